package db

import (
	"context"
	"fmt"

	"soulid/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const copyBatchSize = 200

// CopyStats counts the rows written by Copy
type CopyStats struct {
	Profiles int64
	Tokens   int64
}

// Copy moves every profile and token from src into dst, keeping identifiers and
// timestamps. Rows whose primary key already exists in dst are skipped, so the
// copy can be re-run after a partial failure.
func Copy(ctx context.Context, src, dst *gorm.DB) (CopyStats, error) {
	var stats CopyStats

	err := dst.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profiles []domain.Profile
		res := src.WithContext(ctx).FindInBatches(&profiles, copyBatchSize, func(_ *gorm.DB, _ int) error {
			ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Omit("Tokens").Create(&profiles)
			if ins.Error != nil {
				return fmt.Errorf("copy profiles: %w", ins.Error)
			}
			stats.Profiles += ins.RowsAffected
			return nil
		})
		if res.Error != nil {
			return res.Error
		}

		var tokens []domain.Token
		res = src.WithContext(ctx).FindInBatches(&tokens, copyBatchSize, func(_ *gorm.DB, _ int) error {
			ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&tokens)
			if ins.Error != nil {
				return fmt.Errorf("copy tokens: %w", ins.Error)
			}
			stats.Tokens += ins.RowsAffected
			return nil
		})
		return res.Error
	})
	if err != nil {
		return CopyStats{}, err
	}

	logrus.WithFields(logrus.Fields{
		"profiles": stats.Profiles,
		"tokens":   stats.Tokens,
	}).Info("Copy completed")
	return stats, nil
}
