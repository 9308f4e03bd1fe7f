package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/yuchenli/fupan/internal/models"
	"github.com/yuchenli/fupan/internal/questions"
	"github.com/yuchenli/fupan/internal/validation"
)

type ConfigListCmd struct{}

func (c *ConfigListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	daily := ctx.Questions.Daily()
	fmt.Printf("Daily questions (%d):\n", len(daily))
	for i, q := range daily {
		fmt.Printf("  %d. [%s] %s\n", i+1, q.Key, q.Question)
	}
	fmt.Println()

	deep := ctx.Questions.Deep()
	fmt.Printf("Deep review categories (%d, %d questions):\n", len(deep), models.QuestionCount(deep))
	for _, cat := range deep {
		fmt.Printf("  [%s] %s (%d questions)\n", cat.ID, cat.Name, len(cat.Questions))
		for _, q := range cat.Questions {
			fmt.Printf("    [%s] %s\n", q.ID, q.Text)
		}
	}

	return nil
}

type ConfigAddDailyCmd struct {
	Key         string `arg:"" help:"Answer key for the new question."`
	Question    string `arg:"" help:"Question text."`
	Placeholder string `short:"p" help:"Placeholder shown on the form."`
}

func (c *ConfigAddDailyCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	daily := append(ctx.Questions.Daily(), models.DailyQuestion{
		Key:         c.Key,
		Question:    c.Question,
		Placeholder: c.Placeholder,
	})

	if err := ctx.Questions.SaveDaily(daily); err != nil {
		return err
	}

	fmt.Printf("Added daily question [%s].\n", c.Key)
	warnOnConfigConflicts(ctx)
	return nil
}

type ConfigEditDailyCmd struct {
	Key         string  `arg:"" help:"Key of the question to edit."`
	Question    *string `short:"q" help:"New question text."`
	Placeholder *string `short:"p" help:"New placeholder text."`
}

func (c *ConfigEditDailyCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	daily := ctx.Questions.Daily()
	for i := range daily {
		if daily[i].Key != c.Key {
			continue
		}
		if c.Question != nil {
			daily[i].Question = *c.Question
		}
		if c.Placeholder != nil {
			daily[i].Placeholder = *c.Placeholder
		}
		if err := ctx.Questions.SaveDaily(daily); err != nil {
			return err
		}
		fmt.Printf("Updated daily question [%s].\n", c.Key)
		return nil
	}

	return fmt.Errorf("daily question not found: %s", c.Key)
}

type ConfigDeleteDailyCmd struct {
	Key string `arg:"" help:"Key of the question to delete."`
}

func (c *ConfigDeleteDailyCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	daily := ctx.Questions.Daily()
	for i := range daily {
		if daily[i].Key != c.Key {
			continue
		}
		daily = append(daily[:i], daily[i+1:]...)
		if err := ctx.Questions.SaveDaily(daily); err != nil {
			return err
		}
		fmt.Printf("Deleted daily question [%s]. Existing answers under this key are kept.\n", c.Key)
		return nil
	}

	return fmt.Errorf("daily question not found: %s", c.Key)
}

type ConfigAddCategoryCmd struct {
	Name string `arg:"" help:"Category name."`
	ID   string `help:"Category id (generated when omitted)."`
}

func (c *ConfigAddCategoryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	id := c.ID
	if id == "" {
		id = uuid.New().String()
	}

	deep := append(ctx.Questions.Deep(), models.DeepCategory{
		ID:        id,
		Name:      c.Name,
		Questions: []models.DeepQuestion{},
	})

	if err := ctx.Questions.SaveDeep(deep); err != nil {
		return err
	}

	fmt.Printf("Added category %s (ID: %s).\n", c.Name, id)
	warnOnConfigConflicts(ctx)
	return nil
}

type ConfigAddQuestionCmd struct {
	Category string `arg:"" help:"ID of the category to add to."`
	Text     string `arg:"" help:"Question text."`
	ID       string `help:"Question id (generated when omitted)."`
}

func (c *ConfigAddQuestionCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	id := c.ID
	if id == "" {
		id = uuid.New().String()
	}

	deep := ctx.Questions.Deep()
	for i := range deep {
		if deep[i].ID != c.Category {
			continue
		}
		deep[i].Questions = append(deep[i].Questions, models.DeepQuestion{ID: id, Text: c.Text})
		if err := ctx.Questions.SaveDeep(deep); err != nil {
			return err
		}
		fmt.Printf("Added question to %s (ID: %s).\n", deep[i].Name, id)
		warnOnConfigConflicts(ctx)
		return nil
	}

	return fmt.Errorf("category not found: %s", c.Category)
}

type ConfigResetCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ConfigResetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	if !c.Force {
		ok, err := confirm("This will discard question customizations and restore the defaults. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	ctx.Questions.ResetToDefault()

	daily := questions.DefaultDaily()
	deep := questions.DefaultDeep()
	fmt.Printf("Restored defaults: %d daily questions, %d categories with %d questions.\n",
		len(daily), len(deep), models.QuestionCount(deep))
	return nil
}

// warnOnConfigConflicts surfaces duplicate keys/ids after a config
// edit. Duplicates are permitted in storage; this only makes them
// visible.
func warnOnConfigConflicts(ctx *Context) {
	validator := validation.New()
	result := validator.ValidateConfig(ctx.Questions.Daily(), ctx.Questions.Deep())
	if result.HasConflicts() {
		fmt.Println()
		fmt.Print(result.FormatReport())
	}
}
