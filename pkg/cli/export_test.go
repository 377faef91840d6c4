package cli

var (
	PrintEntries = printEntries
	PrintRoster  = printRoster
	PrintHistory = printHistory
)

var DefineFirestoreIndexes = defineFirestoreIndexes
