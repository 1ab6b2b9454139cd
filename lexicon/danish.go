package lexicon

// Danish returns the built-in Danish lexicon.
func Danish() *Lexicon {
	return newLexicon(
		danishPositive,
		danishNegative,
		danishPositiveKeywords,
		danishNegativeKeywords,
	)
}

// danishPositive lists sentiment-bearing positive terms, matched per token.
var danishPositive = []string{
	"god", "godt", "gode", "bedst", "bedste", "bedre", "fremragende",
	"glimrende", "fantastisk", "fantastiske", "vidunderlig",
	"vidunderlige", "perfekt", "perfekte", "imponerende", "enestående",
	"positiv", "positive", "positivt", "smuk", "smukke", "dejlig",
	"dejligt", "dejlige", "glad", "glade", "glæde", "tilfreds",
	"tilfredse", "elsker", "elsket", "favorit", "vinder", "vandt",
	"succes", "succesfuld", "forbedre", "forbedret", "forbedring",
	"fordel", "fordele", "effektiv", "effektivt", "pålidelig",
	"pålidelige", "anbefale", "anbefaler", "anbefalet", "værdifuld",
	"nyttig", "nyttigt", "nem", "nemt", "populær", "populære", "stærk",
	"vækst", "sikker", "sikkert",
}

// danishNegative lists sentiment-bearing negative terms, matched per token.
var danishNegative = []string{
	"dårlig", "dårligt", "dårlige", "værre", "værst", "værste",
	"forfærdelig", "forfærdeligt", "forfærdelige", "frygtelig",
	"frygteligt", "rædsom", "skuffende", "skuffet", "skuffelse",
	"negativ", "negative", "negativt", "grim", "trist", "ked", "vred",
	"hader", "hadet", "frygt", "bange", "fejl", "fejler", "fejlede",
	"fiasko", "taber", "tabte", "tab", "problem", "problemer",
	"svindel", "bedrageri", "falsk", "falske", "risiko", "risikabel",
	"fare", "farlig", "farligt", "farlige", "skade", "skadelig",
	"advarsel", "undgå", "klage", "klager", "krise", "nedgang", "fald",
	"svag", "svage", "langsom", "langsomt", "dyr", "dyrt", "svær",
	"svært", "besværlig", "ubrugelig", "forkert",
}

// danishPositiveKeywords are matched as substrings for the keyword ratio.
var danishPositiveKeywords = []string{
	"god", "bedste", "fremragende", "glimrende", "fantastisk",
	"perfekt", "succes", "anbefal", "fordel", "effektiv", "pålidelig",
	"kvalitet", "nem", "sikker", "dejlig",
}

// danishNegativeKeywords are matched as substrings for the keyword ratio.
var danishNegativeKeywords = []string{
	"dårlig", "værste", "forfærdelig", "frygtelig", "skuffende", "fejl",
	"problem", "svindel", "bedrageri", "risiko", "advarsel", "undgå",
	"klage", "farlig", "langsom",
}
