package textrules

// Keyword tables for the rule engine. All entries are lowercase; matching is
// substring containment over the lowercased sentence. Each tier list is
// evaluated in order and the first tier with any hit wins, so the order here
// IS the precedence.

type categoryRule struct {
	keywords []string
	category Category
}

// categoryRules encode domain precedence: an utterance that mentions both a
// meeting and an idea is more usefully an event.
var categoryRules = []categoryRule{
	{
		category: CategoryEvent,
		keywords: []string{
			"reunión", "reunion", "meeting",
			"cita", "appointment",
			"evento", "event",
			"llamada", "call",
			"almuerzo", "lunch",
			"cena", "dinner",
			"entrevista", "interview",
		},
	},
	{
		category: CategoryReminder,
		keywords: []string{
			"recordar", "recuérdame", "recuerdame",
			"remind", "remember",
			"no olvidar", "no olvides", "don't forget",
			"acordarme",
		},
	},
	{
		category: CategoryIdea,
		keywords: []string{
			"idea",
			"podría", "podria", "could",
			"what if", "y si ",
			"pensar en", "think about",
			"explorar", "explore",
		},
	},
	{
		category: CategoryNote,
		keywords: []string{
			"nota", "note",
			"apuntar", "anotar", "jot down",
			"escribir", "write down",
		},
	},
}

type priorityRule struct {
	keywords []string
	priority Priority
}

var priorityRules = []priorityRule{
	{
		priority: PriorityUrgent,
		keywords: []string{
			"urgente", "urgent",
			"asap", "cuanto antes",
			"inmediatamente", "immediately",
			"crítico", "critico", "critical",
		},
	},
	{
		priority: PriorityHigh,
		keywords: []string{
			"importante", "important",
			"prioridad", "priority",
		},
	},
	{
		priority: PriorityLow,
		keywords: []string{
			"cuando puedas", "when possible",
			"sin prisa", "no rush",
			"algún día", "algun dia", "someday",
		},
	},
}

// eventCues mark appointment-like wording. Checked independently of the
// category tiers so IsEvent does not depend on which tier won.
var eventCues = []string{
	"reunión", "reunion", "meeting",
	"cita", "appointment",
	"llamada", "call",
}

type durationRule struct {
	phrases []string
	minutes int
}

var durationRules = []durationRule{
	{phrases: []string{"1 hora", "1 hour", "1h"}, minutes: 60},
	{phrases: []string{"30 min", "media hora", "half hour"}, minutes: 30},
	{phrases: []string{"2 horas", "2 hours", "2 hour", "2h"}, minutes: 120},
	{phrases: []string{"15 min"}, minutes: 15},
}

// fillerPrefixes are leading speech fillers stripped from titles. Only the
// first entry that is a true prefix of the sentence is removed, once.
// Longer variants sit above their own prefixes ("i need to" before "need to").
var fillerPrefixes = []string{
	"recuérdame que ", "recuerdame que ",
	"recuérdame ", "recuerdame ",
	"recordar que ", "recordar ",
	"remind me to ", "remind me ",
	"no olvidar ", "no olvides ",
	"don't forget to ", "don't forget ",
	"acordarme de ",
	"tengo que ", "necesito ", "hay que ",
	"i need to ", "need to ", "have to ",
	"añadir ", "agregar ", "add ",
}
