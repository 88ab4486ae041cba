package ports

import "go.trai.ch/toolup/internal/core/domain"

// ReceiptStore persists provisioning receipts.
//
//go:generate go run go.uber.org/mock/mockgen -source=receipt_store.go -destination=mocks/mock_receipt_store.go -package=mocks
type ReceiptStore interface {
	// Get retrieves the receipt for a tool, or nil if none exists.
	Get(tool string) (*domain.Receipt, error)

	// Put stores or replaces the receipt for a tool and persists the store.
	Put(receipt domain.Receipt) error

	// All returns every stored receipt, ordered by tool name.
	All() ([]domain.Receipt, error)
}
