package domain

// Verbosity selects which prompt variant the catalog returns.
type Verbosity int

const (
	// Terse prompts ask for the bare final answer. Used by the fast pipeline.
	Terse Verbosity = iota
	// Verbose prompts allow reasoning. Used by the exploratory pipeline's solvers.
	Verbose
)

// Profile bundles everything the pipelines need for one domain label.
type Profile struct {
	Label Label

	// Description is shown to the classifier next to the label.
	Description string

	Terse   string
	Verbose string

	// SolverTemperature is used by the exploratory solver call.
	SolverTemperature float64

	// ReviewTemperature is used by the exploratory review call.
	ReviewTemperature float64

	// ExtractDraft turns raw solver output into a draft answer.
	ExtractDraft func(text string) string

	// Clean is applied to the trimmed fast-path answer.
	Clean func(text string) string
}

const reviewTemperature = 0.1

//nolint:gochecknoglobals // Immutable lookup table.
var profiles = map[Label]Profile{
	LabelMath: {
		Label:       LabelMath,
		Description: "algebra, arithmetic, equations, inequalities, numeric puzzles.",
		Terse: "You are a careful mathematician.\n" +
			"Read the math or word problem and solve it internally.\n" +
			"Then reply with ONLY the final numeric answer or very short phrase\n" +
			"that the student should write. Do NOT show steps or explanation.\n" +
			"Do NOT include words like 'Answer', 'Final answer', or any symbols\n" +
			"other than what belongs in the answer itself.",
		Verbose: "You are a careful mathematician. Solve the problem step by step.\n" +
			"At the end, after the token '" + FinalAnswerMarker + "', write ONLY the final " +
			"answer (number or simplified expression) on one line.",
		SolverTemperature: 0.0,
		ReviewTemperature: 0.0,
		ExtractDraft:      ExtractFinalAnswer,
		Clean:             ExtractLastNumber,
	},
	LabelCoding: {
		Label:       LabelCoding,
		Description: "programming questions, code explanation, code editing.",
		Terse: "You are a coding assistant.\n" +
			"Reply with ONLY what the question is asking for: either a single\n" +
			"letter choice (A, B, C, etc.), a function name, or a short code\n" +
			"snippet. Do NOT add any explanation. Do NOT use markdown or\n" +
			"surround your answer with backticks.",
		Verbose: "You are a senior software engineer.\n" +
			"Answer the programming question clearly and concisely.\n" +
			"If code is requested, provide ONLY the relevant code (no explanation), " +
			"inside a single code block.\n" +
			"If an explanation is requested, answer in 3–6 short sentences.",
		SolverTemperature: 0.0,
		ReviewTemperature: reviewTemperature,
		ExtractDraft:      trimmed,
		Clean:             trimmed,
	},
	LabelFuturePrediction: {
		Label:       LabelFuturePrediction,
		Description: "questions asking what will happen in the future.",
		Terse: "You are a concise analyst.\n" +
			"Answer the question with 1–3 sentences that directly state your\n" +
			"best assessment. Do NOT include phrases like 'In conclusion' or\n" +
			"'Explanation:'—just the answer itself.",
		Verbose: "You are a careful analyst.\n" +
			"The user is asking about the future. You must NOT claim to know the " +
			"future with certainty.\n" +
			"Briefly explain 2–3 plausible scenarios and the main factors.\n" +
			"Limit your answer to 4–6 sentences.",
		SolverTemperature: 0.2,
		ReviewTemperature: reviewTemperature,
		ExtractDraft:      trimmed,
		Clean:             trimmed,
	},
	LabelPlanning: {
		Label:       LabelPlanning,
		Description: "requests for plans, step-by-step strategies, schedules.",
		Terse: "You are a planner.\n" +
			"Reply with the final plan only. If the question asks for steps,\n" +
			"answer as a numbered list of steps. Do NOT include any meta\n" +
			"commentary or justification.",
		Verbose: "You are an organized planner.\n" +
			"Read the user's request and return a concrete numbered plan.\n" +
			"Use 5–10 numbered steps. Each step should be a single concise sentence.",
		SolverTemperature: 0.0,
		ReviewTemperature: reviewTemperature,
		ExtractDraft:      trimmed,
		Clean:             trimmed,
	},
	LabelCommonSense: {
		Label:       LabelCommonSense,
		Description: "everyday reasoning, explanations, comparisons, etc.",
		Terse: "You are a concise question-answering assistant.\n" +
			"Reply with ONLY the final answer that directly responds to the\n" +
			"question: a short phrase or 1–2 sentences. Do NOT show your\n" +
			"reasoning or discuss how you arrived at the answer.",
		Verbose: "You are a helpful assistant focused on everyday reasoning and explanations.\n" +
			"Answer in 3–6 sentences, using clear, direct language.",
		SolverTemperature: 0.0,
		ReviewTemperature: reviewTemperature,
		ExtractDraft:      trimmed,
		Clean:             trimmed,
	},
}

// ProfileFor returns the profile for label. Unknown labels resolve through NormalizeLabel.
func ProfileFor(label Label) Profile {
	if p, ok := profiles[label]; ok {
		return p
	}
	return profiles[NormalizeLabel(string(label))]
}

// PromptFor returns the system prompt for label in the requested verbosity.
func PromptFor(label Label, mode Verbosity) string {
	p := ProfileFor(label)
	if mode == Verbose {
		return p.Verbose
	}
	return p.Terse
}

// ReviewPrompt is the system prompt for the exploratory review pass.
const ReviewPrompt = "You are a strict reviewer.\n" +
	"You are given a QUESTION and a DRAFT ANSWER.\n" +
	"If the draft answer looks correct, clear, and relevant, simply repeat it.\n" +
	"If you see a clear mistake, contradiction, or missing part, rewrite a better " +
	"final answer.\n" +
	"Reply with ONLY the improved final answer, no commentary."
