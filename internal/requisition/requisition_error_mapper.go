package requisition

import (
	"errors"
	"strings"

	requisitionerrors "go-mrf/internal/requisition/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return requisitionerrors.ErrRequisitionNotFound
	}
	if errors.Is(err, ErrStaleVersion) {
		return requisitionerrors.ErrConcurrentUpdate.WithErr(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_requisition_mrf_number" {
				return requisitionerrors.ErrMRFNumberTaken.WithErr(err)
			}
		case "22P02":
			return requisitionerrors.ErrInvalidRequisitionID
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_requisition_mrf_number") {
		return requisitionerrors.ErrMRFNumberTaken
	}

	return err
}
