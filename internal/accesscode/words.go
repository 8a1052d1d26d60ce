package accesscode

// Word pools for code generation. Uppercase so codes round-trip through
// the case-normalized login path unchanged.

var adjectives = []string{
	"BRAVE", "CLEVER", "SWIFT", "MIGHTY", "GENTLE",
	"SUNNY", "LUCKY", "NOBLE", "QUIET", "WILD",
	"GOLDEN", "SILVER", "CRIMSON", "AMBER", "JADE",
	"COSMIC", "DARING", "EAGER", "FANCY", "GRAND",
	"HAPPY", "JOLLY", "KEEN", "LIVELY", "MERRY",
	"NIMBLE", "PLUCKY", "ROYAL", "SPRY", "WITTY",
	"ZESTY", "BOLD", "CALM", "FLEET", "PROUD",
	"RAPID", "SHARP", "STOUT", "VIVID", "WARM",
}

var animals = []string{
	"BADGER", "BEAVER", "BISON", "CONDOR", "COUGAR",
	"COYOTE", "DOLPHIN", "FALCON", "FERRET", "GECKO",
	"HERON", "IBEX", "JAGUAR", "KOALA", "LEMUR",
	"LYNX", "MARMOT", "NARWHAL", "OCELOT", "OSPREY",
	"OTTER", "PANDA", "PUFFIN", "QUOKKA", "RAVEN",
	"SALMON", "TAPIR", "TOUCAN", "TURTLE", "VIPER",
	"WALRUS", "WOMBAT", "ZEBRA", "BOBCAT", "CRANE",
	"DINGO", "EGRET", "GIBBON", "HUSKY", "MOOSE",
}
