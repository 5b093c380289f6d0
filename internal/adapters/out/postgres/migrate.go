package postgres

import (
	"fulfillment/internal/adapters/out/postgres/couponrepo"
	"fulfillment/internal/adapters/out/postgres/directoryrepo"
	"fulfillment/internal/adapters/out/postgres/menurepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/outboxrepo"
	"fulfillment/internal/adapters/out/postgres/statusrepo"

	"gorm.io/gorm"
)

// ownedByOrder lists the tables whose rows disappear with their order. GORM only
// creates the has-many constraints, these are added explicitly.
var ownedByOrder = []struct {
	table      string
	column     string
	constraint string
}{
	{"status_history", "subject_id", "fk_status_history_order"},
	{"coupon_redemptions", "order_id", "fk_coupon_redemptions_order"},
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.LineItemOptionDTO{},
		&orderrepo.TotalDTO{},
		&statusrepo.StatusDTO{},
		&statusrepo.HistoryDTO{},
		&couponrepo.CouponDTO{},
		&couponrepo.RedemptionDTO{},
		&menurepo.MenuDTO{},
		&outboxrepo.OutboxDTO{},
		&directoryrepo.CustomerDTO{},
		&directoryrepo.AddressDTO{},
		&directoryrepo.LocationDTO{},
	); err != nil {
		return err
	}

	for _, fk := range ownedByOrder {
		err := db.Exec(`
			DO $$
			BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '` + fk.constraint + `') THEN
					ALTER TABLE ` + fk.table + ` ADD CONSTRAINT ` + fk.constraint + `
						FOREIGN KEY (` + fk.column + `) REFERENCES orders (id) ON DELETE CASCADE;
				END IF;
			END $$`).Error
		if err != nil {
			return err
		}
	}

	return nil
}
