package models

// Badge is how a status, case type or category code is displayed.
// Variant applies to status badges, Color to type and category badges.
type Badge struct {
	Label   string
	Variant string
	Color   string
}

var statusBadges = map[string]Badge{
	"open":      {Label: "Aberto", Variant: "default"},
	"pending":   {Label: "Pendente", Variant: "secondary"},
	"closed":    {Label: "Encerrado", Variant: "outline"},
	"suspended": {Label: "Suspenso", Variant: "destructive"},
}

var typeBadges = map[string]Badge{
	"civil":    {Label: "Civil", Color: "blue"},
	"criminal": {Label: "Criminal", Color: "red"},
	"family":   {Label: "Família", Color: "green"},
	"probate":  {Label: "Sucessões", Color: "purple"},
}

// StatusBadge maps a case status code; unknown codes show the raw value.
func StatusBadge(status string) Badge {
	if b, ok := statusBadges[status]; ok {
		return b
	}
	return Badge{Label: status, Variant: "default"}
}

// TypeBadge maps a case type or form category code; unknown codes show the
// raw value in gray.
func TypeBadge(code string) Badge {
	if b, ok := typeBadges[code]; ok {
		return b
	}
	return Badge{Label: code, Color: "gray"}
}
