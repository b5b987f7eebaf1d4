package dao

import (
	"fmt"

	"gorm.io/gorm"
)

const transactionItemConstraint = "fk_transactions_item"

func InitTables(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Item{},
		&Transaction{},
	); err != nil {
		return err
	}

	// The ledger references items through a plain column, so the foreign key is declared
	// here instead of through a gorm association.
	if !db.Migrator().HasConstraint(&Transaction{}, transactionItemConstraint) {
		err := db.Exec(fmt.Sprintf(
			"ALTER TABLE transactions ADD CONSTRAINT %s FOREIGN KEY (item_id) REFERENCES items(id)",
			transactionItemConstraint,
		)).Error
		if err != nil {
			return err
		}
	}

	return nil
}

func dropAllTables(db *gorm.DB) error {
	return db.Migrator().DropTable(&Transaction{}, &Item{})
}
