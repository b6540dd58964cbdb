// Package repository provides the gorm-backed stores behind the domain
// repository interfaces.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// lifecycle implements the uniform find/save/delete contract shared by every
// resource kind. Resources differ only in their key: doctors, patients, and
// appointments are addressed by a numeric id, rooms by their name. The key
// column and the kind's not-found sentinel are the only per-resource inputs.
type lifecycle[T any, K comparable] struct {
	db        *gorm.DB
	keyColumn string
	notFound  error
}

func newLifecycle[T any, K comparable](db *gorm.DB, keyColumn string, notFound error) lifecycle[T, K] {
	return lifecycle[T, K]{db: db, keyColumn: keyColumn, notFound: notFound}
}

func (l *lifecycle[T, K]) FindAll(ctx context.Context) ([]*T, error) {
	var out []*T
	if err := l.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	return out, nil
}

func (l *lifecycle[T, K]) FindByKey(ctx context.Context, key K) (*T, error) {
	var out T
	err := l.db.WithContext(ctx).First(&out, l.keyColumn+" = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, l.notFound
		}
		return nil, fmt.Errorf("finding record: %w", err)
	}
	return &out, nil
}

func (l *lifecycle[T, K]) Save(ctx context.Context, entity *T) error {
	if err := l.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("saving record: %w", err)
	}
	return nil
}

func (l *lifecycle[T, K]) DeleteByKey(ctx context.Context, key K) error {
	res := l.db.WithContext(ctx).Delete(new(T), l.keyColumn+" = ?", key)
	if res.Error != nil {
		return fmt.Errorf("deleting record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return l.notFound
	}
	return nil
}

// DeleteByKey distinguishes absent keys; DeleteAll never fails on emptiness.
func (l *lifecycle[T, K]) DeleteAll(ctx context.Context) error {
	err := l.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(new(T)).Error
	if err != nil {
		return fmt.Errorf("deleting records: %w", err)
	}
	return nil
}
