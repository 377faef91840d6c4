package audit

var FormatEntry = formatEntry
