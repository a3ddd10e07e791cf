package service

import (
	"context"
	"strings"
	"time"

	"notebook-share-be/internal/dto"
	"notebook-share-be/internal/entity"
	"notebook-share-be/internal/pkg/logger"
	"notebook-share-be/internal/pkg/roster"
	"notebook-share-be/internal/pkg/serverutils"
	"notebook-share-be/internal/repository/unitofwork"
)

type IPermissionService interface {
	ListShares(ctx context.Context, notebookID string) (*dto.ShareListResponse, error)
	Grant(ctx context.Context, notebookID string, req *dto.GrantPermissionRequest) (*dto.GrantPermissionResponse, error)
	Revoke(ctx context.Context, notebookID, email string) error
	BatchImport(ctx context.Context, notebookID string, rows []roster.Row) (*dto.BatchImportResponse, error)
}

type permissionService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewPermissionService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IPermissionService {
	return &permissionService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *permissionService) ListShares(ctx context.Context, notebookID string) (*dto.ShareListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	active, err := uow.PermissionRepository().FindActiveByNotebook(ctx, notebookID)
	if err != nil {
		return nil, err
	}

	shares := make([]dto.ShareRow, 0, len(active))
	emails := make([]string, 0, len(active))
	editors := 0
	for _, p := range active {
		shares = append(shares, dto.ShareRow{
			Email:     p.UserEmail,
			Role:      string(p.Role),
			UpdatedAt: p.UpdatedAt,
		})
		emails = append(emails, p.UserEmail)
		if p.Role == entity.RoleEditor {
			editors++
		}
	}

	return &dto.ShareListResponse{
		NotebookID: notebookID,
		Link:       NotebookLink(notebookID),
		Total:      len(active),
		Editors:    editors,
		EmailList:  strings.Join(emails, ", "),
		Shares:     shares,
	}, nil
}

// Grant is the find-or-create path keeping one row per pair: an existing row
// (Active or Revoked) gets its role overwritten, status forced back to Active
// and timestamp refreshed; otherwise a fresh Active row is appended.
func (s *permissionService) Grant(ctx context.Context, notebookID string, req *dto.GrantPermissionRequest) (*dto.GrantPermissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	email := strings.TrimSpace(req.Email)
	now := time.Now()

	existing, err := uow.PermissionRepository().FindByPair(ctx, notebookID, email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Role = entity.PermissionRole(req.Role)
		existing.Status = entity.StatusActive
		existing.UpdatedAt = now
		if err := uow.PermissionRepository().Update(ctx, existing); err != nil {
			return nil, err
		}
		s.logger.Info("permission", "Share updated", map[string]interface{}{
			"notebook_id": notebookID, "email": email, "role": req.Role,
		})
		return &dto.GrantPermissionResponse{
			NotebookID: notebookID, Email: email, Role: req.Role, Created: false,
		}, nil
	}

	permission := &entity.Permission{
		NotebookID: notebookID,
		UserEmail:  email,
		Role:       entity.PermissionRole(req.Role),
		Status:     entity.StatusActive,
		UpdatedAt:  now,
	}
	if err := uow.PermissionRepository().Create(ctx, permission); err != nil {
		return nil, err
	}
	s.logger.Info("permission", "Share granted", map[string]interface{}{
		"notebook_id": notebookID, "email": email, "role": req.Role,
	})
	return &dto.GrantPermissionResponse{
		NotebookID: notebookID, Email: email, Role: req.Role, Created: true,
	}, nil
}

// Revoke is a soft delete: the row stays, its status flips to Revoked and
// every other field keeps its value. An unknown pair is a not-found result
// and performs no write.
func (s *permissionService) Revoke(ctx context.Context, notebookID, email string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.PermissionRepository().FindByPair(ctx, notebookID, email)
	if err != nil {
		return err
	}
	if existing == nil {
		return serverutils.NewNotFound("share record not found")
	}

	existing.Status = entity.StatusRevoked
	if err := uow.PermissionRepository().Update(ctx, existing); err != nil {
		return err
	}
	s.logger.Info("permission", "Share revoked", map[string]interface{}{
		"notebook_id": notebookID, "email": email,
	})
	return nil
}

// BatchImport appends every row whose pair is not already present. The dedup
// set is built from all rows regardless of status, so a Revoked pair counts
// as present and is skipped rather than reactivated. Re-granting through the
// single-add path is the way to reactivate.
func (s *permissionService) BatchImport(ctx context.Context, notebookID string, rows []roster.Row) (*dto.BatchImportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	all, err := uow.PermissionRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	exists := make(map[string]struct{}, len(all))
	for _, p := range all {
		exists[p.NotebookID+"|"+p.UserEmail] = struct{}{}
	}

	now := time.Now()
	batch := make([]*entity.Permission, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		email := strings.TrimSpace(row.Email)
		if email == "" {
			continue
		}
		key := notebookID + "|" + email
		if _, ok := exists[key]; ok {
			skipped++
			continue
		}
		exists[key] = struct{}{} // dedup within the batch too

		role := strings.TrimSpace(row.Role)
		if role == "" {
			role = roster.DefaultRole
		}
		batch = append(batch, &entity.Permission{
			NotebookID: notebookID,
			UserEmail:  email,
			Role:       entity.PermissionRole(role),
			Status:     entity.StatusActive,
			UpdatedAt:  now,
		})
	}

	if err := uow.PermissionRepository().CreateBatch(ctx, batch); err != nil {
		return nil, err
	}
	s.logger.Info("permission", "Batch import finished", map[string]interface{}{
		"notebook_id": notebookID, "inserted": len(batch), "skipped": skipped,
	})
	return &dto.BatchImportResponse{
		NotebookID: notebookID,
		Inserted:   len(batch),
		Skipped:    skipped,
	}, nil
}
