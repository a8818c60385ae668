package homework

import (
	"fmt"

	"github.com/ilyadubrovsky/homework-status-bot/internal/config"
	"github.com/ilyadubrovsky/homework-status-bot/internal/domain"
	ierrors "github.com/ilyadubrovsky/homework-status-bot/internal/errors"
	"github.com/rs/zerolog/log"
)

type svc struct{}

func NewService() *svc {
	return &svc{}
}

// CheckResponse validates the decoded Practicum answer and returns its non-empty homeworks list.
func (s *svc) CheckResponse(response any) ([]any, error) {
	body, ok := response.(map[string]any)
	if !ok {
		return nil, logged(ierrors.WrongType("dict"))
	}

	value, ok := body[domain.HomeworksKey]
	if !ok {
		return nil, logged(ierrors.MissingKey())
	}

	homeworks, ok := value.([]any)
	if !ok {
		return nil, logged(ierrors.WrongType("list"))
	}

	if len(homeworks) == 0 {
		return nil, logged(ierrors.ErrEmptyHomeworks)
	}

	return homeworks, nil
}

// ParseStatus builds the notification text for a single homework record.
func (s *svc) ParseStatus(homework any) (string, error) {
	record, ok := homework.(map[string]any)
	if !ok {
		return "", logged(ierrors.WrongType("dict"))
	}

	hw, err := toHomework(record)
	if err != nil {
		return "", err
	}

	verdict, ok := hw.Status.Verdict()
	if !ok {
		log.Error().Str("status", string(hw.Status)).Msg(ierrors.ErrUnknownStatus.Error())
		return "", fmt.Errorf("%w: %s", ierrors.ErrUnknownStatus, hw.Status)
	}

	return fmt.Sprintf(config.StatusChangedTemplate, hw.Name, verdict), nil
}

func toHomework(record map[string]any) (*domain.Homework, error) {
	name, nameOK := record[domain.HomeworkNameKey]
	status, statusOK := record[domain.StatusKey]
	if !nameOK || name == nil || !statusOK || status == nil {
		return nil, ierrors.ErrMissingField
	}

	nameStr, ok := name.(string)
	if !ok {
		return nil, logged(ierrors.WrongType("str"))
	}
	statusStr, ok := status.(string)
	if !ok {
		return nil, logged(ierrors.WrongType("str"))
	}

	return &domain.Homework{
		Name:   nameStr,
		Status: domain.Status(statusStr),
	}, nil
}

func logged(err error) error {
	log.Error().Msg(err.Error())
	return err
}
