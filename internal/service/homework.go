package service

type Homework interface {
	CheckResponse(response any) ([]any, error)
	ParseStatus(homework any) (string, error)
}
