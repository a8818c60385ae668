package domain

type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the text shown to the student, ok is false for unknown statuses.
func (s Status) Verdict() (string, bool) {
	verdict, ok := verdicts[s]
	return verdict, ok
}

// Homework is one record of the homeworks list returned by Practicum.
type Homework struct {
	Name   string
	Status Status
}

const (
	HomeworksKey    = "homeworks"
	HomeworkNameKey = "homework_name"
	StatusKey       = "status"
	CurrentDateKey  = "current_date"
)
