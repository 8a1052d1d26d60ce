package daily

// Content pools for challenge payloads. Pools are fixed: growing them is
// safe, reordering them changes which items a given seed picks.

type element struct {
	Symbol string
	Name   string
}

var elementPool = []element{
	{"H", "Hydrogen"},
	{"He", "Helium"},
	{"Li", "Lithium"},
	{"C", "Carbon"},
	{"N", "Nitrogen"},
	{"O", "Oxygen"},
	{"Na", "Sodium"},
	{"Mg", "Magnesium"},
	{"Al", "Aluminum"},
	{"Si", "Silicon"},
	{"P", "Phosphorus"},
	{"S", "Sulfur"},
	{"Cl", "Chlorine"},
	{"K", "Potassium"},
	{"Ca", "Calcium"},
	{"Fe", "Iron"},
	{"Cu", "Copper"},
	{"Zn", "Zinc"},
	{"Ag", "Silver"},
	{"Au", "Gold"},
}

type vocabularyEntry struct {
	Word string
	Hint string
}

var vocabularyPool = []vocabularyEntry{
	{"planet", "It orbits a star"},
	{"volcano", "Mountain that can erupt"},
	{"fraction", "Part of a whole number"},
	{"gravity", "It keeps your feet on the ground"},
	{"habitat", "Where an animal lives"},
	{"molecule", "Two or more atoms bonded together"},
	{"equator", "Imaginary line around the middle of Earth"},
	{"nutrient", "Food substance your body needs"},
	{"predator", "Animal that hunts other animals"},
	{"velocity", "Speed with a direction"},
	{"ecosystem", "Living things and their environment"},
	{"photosynthesis", "How plants make their food"},
	{"continent", "One of Earth's seven large landmasses"},
	{"telescope", "Tool for looking at distant objects"},
	{"vertebrate", "Animal with a backbone"},
	{"evaporate", "Turn from liquid into gas"},
	{"pendulum", "Weight that swings back and forth"},
	{"glacier", "Slow-moving river of ice"},
}

var timelinePool = []TimelineEvent{
	{"Great Pyramid of Giza built", -2560},
	{"First Olympic Games", -776},
	{"Founding of Rome", -753},
	{"Great Wall of China begun", -221},
	{"Fall of the Roman Empire", 476},
	{"Magna Carta signed", 1215},
	{"Gutenberg invents the printing press", 1440},
	{"Columbus reaches the Americas", 1492},
	{"Shakespeare writes Hamlet", 1600},
	{"Newton publishes laws of motion", 1687},
	{"American Declaration of Independence", 1776},
	{"French Revolution begins", 1789},
	{"Darwin publishes On the Origin of Species", 1859},
	{"First telephone call", 1876},
	{"Wright brothers' first flight", 1903},
	{"Penicillin discovered", 1928},
	{"First computer ENIAC completed", 1945},
	{"DNA structure discovered", 1953},
	{"First Moon landing", 1969},
	{"World Wide Web invented", 1989},
}
