package domain

// Word represents a word-translation pair.
// AddedBy is nil for the global preset words shared by everyone.
type Word struct {
	ID          int
	Word        string
	Translation string
	AddedBy     *int
}

// WordPair is a simplified version for seeding and display
type WordPair struct {
	Word        string
	Translation string
}

// Card is the currently presented pair a user is expected to answer
type Card struct {
	WordID      int
	Word        string
	Translation string
}

// DefaultWords is the preset vocabulary inserted once, when the words
// table is empty at first run.
var DefaultWords = []WordPair{
	{"Red", "Красный"},
	{"Blue", "Синий"},
	{"Green", "Зелёный"},
	{"House", "Дом"},
	{"Car", "Машина"},
	{"Peace", "Мир"},
	{"Hello", "Привет"},
	{"She", "Она"},
	{"They", "Они"},
	{"Table", "Стол"},
}
