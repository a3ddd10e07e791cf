package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"notebook-share-be/internal/dto"
	"notebook-share-be/internal/entity"
	"notebook-share-be/internal/pkg/logger"
	"notebook-share-be/internal/repository/unitofwork"
)

// notebookLinkBase is the deep-link template into the external system. Link
// generation only; the id is never validated against the remote side.
const notebookLinkBase = "https://notebooklm.google.com/notebook/"

func NotebookLink(notebookID string) string {
	return notebookLinkBase + notebookID
}

type INotebookService interface {
	GetAll(ctx context.Context) ([]*dto.NotebookResponse, error)
	Upsert(ctx context.Context, owner string, req *dto.UpsertNotebookRequest) (*dto.UpsertNotebookResponse, error)
}

type notebookService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewNotebookService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) INotebookService {
	return &notebookService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *notebookService) GetAll(ctx context.Context) ([]*dto.NotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebooks, err := uow.NotebookRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NotebookResponse, 0, len(notebooks))
	for _, nb := range notebooks {
		result = append(result, &dto.NotebookResponse{
			NotebookID:  nb.NotebookID,
			Name:        nb.Name,
			Owner:       nb.Owner,
			CreatedDate: nb.CreatedDate,
			Link:        NotebookLink(nb.NotebookID),
		})
	}
	return result, nil
}

// Upsert is keyed on notebook_id: an existing row gets its name and owner
// overwritten in place, a new row is appended stamped with today's date.
// Rows are never deleted.
func (s *notebookService) Upsert(ctx context.Context, owner string, req *dto.UpsertNotebookRequest) (*dto.UpsertNotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	id := strings.TrimSpace(req.NotebookID)
	if id == "" {
		id = strconv.FormatInt(time.Now().Unix(), 10)
	}

	existing, err := uow.NotebookRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Name = req.Name
		existing.Owner = owner
		if err := uow.NotebookRepository().Update(ctx, existing); err != nil {
			return nil, err
		}
		s.logger.Info("notebook", "Notebook updated", map[string]interface{}{"notebook_id": id})
		return &dto.UpsertNotebookResponse{NotebookID: id, Created: false}, nil
	}

	notebook := &entity.Notebook{
		NotebookID:  id,
		Name:        req.Name,
		Owner:       owner,
		CreatedDate: time.Now(),
	}
	if err := uow.NotebookRepository().Create(ctx, notebook); err != nil {
		return nil, err
	}
	s.logger.Info("notebook", "Notebook created", map[string]interface{}{"notebook_id": id, "owner": owner})
	return &dto.UpsertNotebookResponse{NotebookID: id, Created: true}, nil
}
