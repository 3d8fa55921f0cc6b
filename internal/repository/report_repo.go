package repository

import (
	"context"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) (*InsertResult, error)
	List(ctx context.Context) ([]entity.Report, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}
