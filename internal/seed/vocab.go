package seed

var firstNames = []string{
	"John", "Sarah", "Michael", "Emma", "David", "Olivia", "James", "Sophia",
	"Robert", "Isabella", "William", "Mia", "Joseph", "Charlotte", "Thomas", "Amelia",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
}

var industries = []string{
	"Tech", "Solutions", "Logistics", "Ventures", "Group", "Inc",
	"Partners", "Systems", "Digital", "Creative", "Global", "Direct",
}

var services = []string{
	"Consulting", "Development", "Marketing", "Integration",
	"Strategy", "Optimization", "Management", "Design",
}

const (
	seedAddress      = "123 Business Way, Suite 100"
	ContractPrefix   = "Contract: "
	ClosedDealPrefix = "Closed Deal: "
)
