package position

// disallowedWords are common English profanities and slurs. Positions are
// visible in URLs, exports and database dumps, so none of these is ever
// generated by default.
var disallowedWords = []string{
	"anal", "anus", "arse", "ass", "asses", "asshole",
	"bastard", "bitch", "bitches", "blowjob", "bollock", "bollocks", "boner", "boob", "boobs",
	"bugger", "bum", "butt", "buttplug",
	"chink", "clit", "cock", "cocks", "coon", "crap", "cum", "cunt", "cunts",
	"damn", "dick", "dicks", "dildo", "dyke",
	"fag", "faggot", "fart", "feck", "felch", "fuck", "fucked", "fucker", "fucking", "fucks",
	"gook", "homo", "jizz", "kike", "knob", "kunt",
	"labia", "muff", "nazi", "nigga", "nigger", "nonce",
	"penis", "piss", "poo", "poop", "porn", "prick", "pube", "pussy",
	"queer", "rape", "rapist", "retard",
	"scrotum", "semen", "sex", "shag", "shit", "shits", "shitty", "skank", "slag", "slut", "smegma",
	"spastic", "spic", "spunk",
	"tit", "tits", "titty", "tosser", "turd", "twat",
	"vagina", "wank", "wanker", "whore", "wog",
}
