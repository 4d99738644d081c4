package seed

// Parameter names shared by the generators.
const (
	NumPredators          = "num_predators"
	NumPrey               = "num_prey"
	NumGrass              = "num_grass"
	ReproducePredatorProb = "reproduce_predator_prob"
	ReproducePreyProb     = "reproduce_prey_prob"
	GainFromFoodPredator  = "gain_from_food_predator"
)

// PredatorPrey writes a single state document that carries the population
// counts alongside the reproduction and food parameters.
var PredatorPrey = &Generator{
	Program: "xmlgen",
	Summary: "Writes 0.xml with the predator and prey populations and their parameters.",
	Params: []string{
		NumPredators,
		NumPrey,
		ReproducePredatorProb,
		ReproducePreyProb,
		GainFromFoodPredator,
	},
	render: func(v Values) []Artifact {
		doc := stateDocument([]element{
			{"REPRODUCE_PREY_PROB", v[ReproducePreyProb]},
			{"REPRODUCE_PREDATOR_PROB", v[ReproducePredatorProb]},
			{"GAIN_FROM_FOOD_PREDATOR", v[GainFromFoodPredator]},
			{"NUM_PREDATORS", v[NumPredators]},
			{"NUM_PREY", v[NumPrey]},
		})
		return []Artifact{{Name: StateFile, Content: doc, Announce: true}}
	},
}

// PredatorPreyGrass keeps the populations out of the state document and
// writes them, together with the grass count, to a separate text file.
var PredatorPreyGrass = &Generator{
	Program: "xmlgen-grass",
	Summary: "Writes 0.xml with the simulation parameters and initial_populations.txt with the prey, predator and grass counts.",
	Params: []string{
		NumPrey,
		NumPredators,
		NumGrass,
		ReproducePreyProb,
		ReproducePredatorProb,
		GainFromFoodPredator,
	},
	render: func(v Values) []Artifact {
		doc := stateDocument([]element{
			{"REPRODUCE_PREY_PROB", v[ReproducePreyProb]},
			{"REPRODUCE_PREDATOR_PROB", v[ReproducePredatorProb]},
			{"GAIN_FROM_FOOD_PREDATOR", v[GainFromFoodPredator]},
		})
		return []Artifact{
			{Name: StateFile, Content: doc, Announce: true},
			{Name: PopulationsFile, Content: populationLine(v[NumPrey], v[NumPredators], v[NumGrass])},
		}
	},
}
