package sigil

// Option is one side of a forced-choice question.
type Option struct {
	Text   string `json:"text"`
	Letter string `json:"letter"`
}

// BinaryQuestion is a forced choice between the two poles of one axis.
type BinaryQuestion struct {
	ID      int    `json:"id"`
	Text    string `json:"text"`
	OptionA Option `json:"option_a"`
	OptionB Option `json:"option_b"`
}

// LikertQuestion is a statement keyed to one pole, answered on a five point
// agree/disagree scale mapped to -2..2.
type LikertQuestion struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Letter string `json:"letter"`
}

// BinaryQuestions is the twenty question forced-choice bank, five per axis.
var BinaryQuestions = []BinaryQuestion{
	{1, "When you try something new, you...", Option{"want to get moving right away", "V"}, Option{"want to read the situation first", "S"}},
	{2, "When you see someone in trouble...", Option{"you step in and offer help", "V"}, Option{"you support them while keeping watch", "S"}},
	{3, "When change arrives...", Option{"you ride the new current", "V"}, Option{"you adapt while protecting what is stable", "S"}},
	{4, "In a team or a gathering...", Option{"you tend to speak up", "V"}, Option{"you tend to listen", "S"}},
	{5, "When pushing something forward...", Option{"you make the first move", "V"}, Option{"you wait for the right moment", "S"}},

	{6, "When solving a problem, you first...", Option{"grasp the big picture", "I"}, Option{"check the concrete steps", "C"}},
	{7, "Your ideas usually come from...", Option{"abstract images", "I"}, Option{"concrete experience", "C"}},
	{8, "When explaining something...", Option{"you use metaphors and analogies", "I"}, Option{"you go through facts in order", "C"}},
	{9, "When making a plan...", Option{"you work backward from the goal", "I"}, Option{"you stack up what you can do now", "C"}},
	{10, "When unsure, you rely on...", Option{"intuition and flashes of insight", "I"}, Option{"past experience and precedent", "C"}},

	{11, "When choosing, what matters is...", Option{"whether it moves your heart", "E"}, Option{"whether it is logically sound", "L"}},
	{12, "In relationships you value...", Option{"empathy and harmony", "E"}, Option{"honesty and fairness", "L"}},
	{13, "When a discussion heats up...", Option{"you consider the other's feelings", "E"}, Option{"you want to sort out the points", "L"}},
	{14, "When deciding...", Option{"you want the warm choice", "E"}, Option{"you want the rational choice", "L"}},
	{15, "When giving feedback...", Option{"you are careful of feelings", "E"}, Option{"you state the facts plainly", "L"}},

	{16, "When you get new information...", Option{"you want to try it at once", "Q"}, Option{"you want to weigh it carefully", "D"}},
	{17, "When making a judgement...", Option{"you decide fast and move", "Q"}, Option{"you take time to be sure", "D"}},
	{18, "When scheduling...", Option{"you prefer to keep it flexible", "Q"}, Option{"you prefer it nailed down", "D"}},
	{19, "When working through tasks...", Option{"you run several in parallel", "Q"}, Option{"you finish one at a time", "D"}},
	{20, "When reaching an answer you prefer...", Option{"a quick, lively decision", "Q"}, Option{"a well-considered conclusion", "D"}},
}

// LikertQuestions is the forty statement bank, ten per axis, five per pole.
var LikertQuestions = []LikertQuestion{
	{1, "I start new things before I feel fully ready.", "V"},
	{2, "I enjoy being the one who sets things in motion.", "V"},
	{3, "Change excites me more than it worries me.", "V"},
	{4, "I would rather act and correct course than wait.", "V"},
	{5, "I speak up first when a group is stuck.", "V"},
	{6, "I prefer to observe before I commit.", "S"},
	{7, "Keeping things stable matters more to me than novelty.", "S"},
	{8, "I double-check before I act.", "S"},
	{9, "I feel safest when risks are covered in advance.", "S"},
	{10, "I would rather support than lead.", "S"},

	{11, "I see patterns before I see details.", "I"},
	{12, "Symbols and images speak to me.", "I"},
	{13, "I trust my gut when the facts run out.", "I"},
	{14, "I plan by imagining the end state first.", "I"},
	{15, "I often think in metaphors.", "I"},
	{16, "I need concrete examples to understand an idea.", "C"},
	{17, "I rely on what has worked before.", "C"},
	{18, "I prefer step-by-step instructions.", "C"},
	{19, "I build plans from what is available today.", "C"},
	{20, "I trust measurable results over impressions.", "C"},

	{21, "How a choice feels matters as much as whether it is right.", "E"},
	{22, "I notice the mood of a room quickly.", "E"},
	{23, "Harmony in a group is worth some compromise.", "E"},
	{24, "I express my feelings openly.", "E"},
	{25, "I soften hard news for the listener.", "E"},
	{26, "I decide by weighing pros and cons.", "L"},
	{27, "Fairness matters more to me than comfort.", "L"},
	{28, "In an argument I focus on the logic.", "L"},
	{29, "I say what is true even when it is awkward.", "L"},
	{30, "I prefer a rational plan over an inspiring one.", "L"},

	{31, "I like to try things out immediately.", "Q"},
	{32, "I am comfortable deciding with partial information.", "Q"},
	{33, "I keep my schedule loose.", "Q"},
	{34, "I juggle several tasks at once.", "Q"},
	{35, "I ask many questions before settling on one answer.", "Q"},
	{36, "I take my time before committing.", "D"},
	{37, "I like plans to be fixed in advance.", "D"},
	{38, "I finish one task before starting another.", "D"},
	{39, "Once I decide, I follow through without wavering.", "D"},
	{40, "I prefer a well-considered conclusion to a fast one.", "D"},
}
