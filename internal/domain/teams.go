package domain

// TeamUnassigned is the placeholder for sites with no crew yet.
const TeamUnassigned = "Unassigned"

// Teams is the static crew roster. Assignments must come from this list or be
// TeamUnassigned.
var Teams = []string{
	"Équipe Issam",
	"Équipe MG",
	"Équipe TAM",
	"Équipe Momo DZ",
	"Équipe Hamada",
	"Équipe AR",
	"Équipe Diaa",
	"Équipe M.abdo",
	"Équipe Mansour",
	"Équipe M.hassan",
}

func ValidTeam(name string) bool {
	if name == TeamUnassigned {
		return true
	}
	for _, t := range Teams {
		if t == name {
			return true
		}
	}
	return false
}
