package repositories

import "gorm.io/gorm"

// Transactor выполняет функцию в рамках одной транзакции БД.
// Полученный tx передается репозиториям через WithTx
type Transactor interface {
	InTx(fn func(tx *gorm.DB) error) error
}

type gormTransactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) Transactor {
	return &gormTransactor{db: db}
}

func (t *gormTransactor) InTx(fn func(tx *gorm.DB) error) error {
	return t.db.Transaction(fn)
}
