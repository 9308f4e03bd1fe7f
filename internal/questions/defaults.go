package questions

import "github.com/yuchenli/fupan/internal/models"

var defaultDaily = []models.DailyQuestion{
	{
		Key:         "valuable",
		Question:    "今天做了什么有价值的事？",
		Placeholder: "记录今天完成的重要工作、帮助他人的事、或任何让你感到有意义的行动...",
	},
	{
		Key:         "learned",
		Question:    "今天学到了什么新东西？",
		Placeholder: "新知识、新技能、新感悟，或者从错误中获得的教训...",
	},
	{
		Key:         "mistakes",
		Question:    "今天犯了什么错误？",
		Placeholder: "诚实地记录错误，这是成长的机会。不要责备自己，而是思考如何改进...",
	},
	{
		Key:         "emotions",
		Question:    "今天有什么较大的情绪波动？",
		Placeholder: "什么触发了你的情绪？开心、焦虑、愤怒还是平静？为什么？",
	},
	{
		Key:         "opportunities",
		Question:    "今天遇到了什么机会？",
		Placeholder: "可能是新的合作、学习机会、或者一个有趣的想法...",
	},
}

var defaultDeep = []models.DeepCategory{
	{
		ID:      "reflection",
		Name:    "反思现状",
		Color:   "from-blue-500 to-cyan-500",
		BgColor: "bg-blue-50",
		Questions: []models.DeepQuestion{
			{ID: "r1", Text: "当下最让我内耗的事是什么？"},
			{ID: "r2", Text: "我投入时间的事里，哪些是无效忙碌？"},
			{ID: "r3", Text: "我的优势是什么？"},
			{ID: "r4", Text: "人际关系中，谁在消耗我？谁在滋养我？"},
			{ID: "r5", Text: "现在的生活状态是否满意？"},
			{ID: "r6", Text: "最近一次成就感来自哪里？"},
			{ID: "r7", Text: "我有目标和方向吗？"},
		},
	},
	{
		ID:      "planning",
		Name:    "未来规划",
		Color:   "from-violet-500 to-purple-500",
		BgColor: "bg-violet-50",
		Questions: []models.DeepQuestion{
			{ID: "p1", Text: "3年后，我想成为什么样的人？"},
			{ID: "p2", Text: "未来1年，最想达成的目标是什么？"},
			{ID: "p3", Text: "为了实现目标，我必须放弃哪些事？"},
			{ID: "p4", Text: "5年后，我希望拥有的核心能力是什么？现在的差距多大？"},
			{ID: "p5", Text: "理想的生活节奏是什么样的？"},
			{ID: "p6", Text: "我想为家人创造什么价值？"},
			{ID: "p7", Text: "未来可能遇到的最大风险是什么？"},
			{ID: "p8", Text: "哪些人/平台/机会能帮我更快接近目标？"},
			{ID: "p9", Text: "我最想避免的人生遗憾是什么？"},
			{ID: "p10", Text: "财务上，未来1-3年的目标是什么？"},
			{ID: "p11", Text: "希望别人如何形容你？"},
		},
	},
	{
		ID:      "growth",
		Name:    "自我提升",
		Color:   "from-orange-500 to-amber-500",
		BgColor: "bg-orange-50",
		Questions: []models.DeepQuestion{
			{ID: "g1", Text: "目前阻碍我成长的最大短板是什么？"},
			{ID: "g2", Text: "我需要学习哪些新技能？"},
			{ID: "g3", Text: "哪些坏习惯正在消耗我？"},
			{ID: "g4", Text: "我想培养的优质习惯是什么？"},
			{ID: "g5", Text: "我需要向哪些人学习？"},
			{ID: "g6", Text: "我的认知盲区可能在哪里？"},
			{ID: "g7", Text: "如何更好地管理情绪？"},
			{ID: "g8", Text: "如何提升「执行力」？"},
		},
	},
	{
		ID:      "action",
		Name:    "立即行动",
		Color:   "from-emerald-500 to-teal-500",
		BgColor: "bg-emerald-50",
		Questions: []models.DeepQuestion{
			{ID: "a1", Text: "本周最该启动的具体小事是什么？"},
		},
	},
}

// DefaultDaily returns a fresh copy of the built-in daily questions.
func DefaultDaily() []models.DailyQuestion {
	out := make([]models.DailyQuestion, len(defaultDaily))
	copy(out, defaultDaily)
	return out
}

// DefaultDeep returns a fresh copy of the built-in deep review
// categories (4 categories, 27 questions).
func DefaultDeep() []models.DeepCategory {
	out := make([]models.DeepCategory, len(defaultDeep))
	for i, cat := range defaultDeep {
		qs := make([]models.DeepQuestion, len(cat.Questions))
		copy(qs, cat.Questions)
		cat.Questions = qs
		out[i] = cat
	}
	return out
}
