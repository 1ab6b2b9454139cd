package lexicon

// English returns the built-in English lexicon.
func English() *Lexicon {
	return newLexicon(
		englishPositive,
		englishNegative,
		englishPositiveKeywords,
		englishNegativeKeywords,
	)
}

// englishPositive lists sentiment-bearing positive terms, matched per token.
var englishPositive = []string{
	"good", "great", "excellent", "best", "better", "amazing", "awesome",
	"wonderful", "fantastic", "brilliant", "outstanding", "superb",
	"perfect", "impressive", "remarkable", "exceptional", "positive",
	"beautiful", "lovely", "nice", "happy", "glad", "joy", "delighted",
	"pleased", "satisfied", "love", "loved", "favorite", "win", "winner",
	"winning", "success", "successful", "succeed", "improve", "improved",
	"improvement", "benefit", "benefits", "beneficial", "effective",
	"efficient", "reliable", "trusted", "trustworthy", "recommend",
	"recommended", "valuable", "helpful", "useful", "easy", "innovative",
	"popular", "praised", "acclaimed", "strong", "thriving", "growth",
	"gain", "safe",
}

// englishNegative lists sentiment-bearing negative terms, matched per token.
var englishNegative = []string{
	"bad", "worse", "worst", "terrible", "awful", "horrible", "poor",
	"dreadful", "disappointing", "disappointed", "disappointment",
	"negative", "ugly", "sad", "unhappy", "angry", "hate", "hated",
	"fear", "afraid", "fail", "failed", "failing", "failure", "lose",
	"loser", "losing", "loss", "problem", "problems", "issue", "issues",
	"error", "errors", "bug", "broken", "flaw", "flawed", "defect",
	"scam", "fraud", "fake", "risk", "risky", "danger", "dangerous",
	"harm", "harmful", "warning", "avoid", "complaint", "complaints",
	"crisis", "decline", "drop", "weak", "slow", "expensive", "difficult",
	"useless", "wrong",
}

// englishPositiveKeywords are matched as substrings for the keyword ratio.
var englishPositiveKeywords = []string{
	"good", "great", "excellent", "best", "perfect", "amazing",
	"wonderful", "fantastic", "awesome", "outstanding", "success",
	"improve", "benefit", "effective", "reliable", "recommend",
	"quality", "innovative", "trusted", "valuable",
}

// englishNegativeKeywords are matched as substrings for the keyword ratio.
var englishNegativeKeywords = []string{
	"bad", "poor", "terrible", "awful", "horrible", "worst", "fail",
	"problem", "issue", "error", "broken", "scam", "fraud", "risk",
	"warning", "avoid", "complaint", "decline", "weak", "wrong",
}
