package tr

import (
	"context"

	"github.com/DRSN-tech/botstore-backend/pkg/e"
	bolt "go.etcd.io/bbolt"
)

// TxFromCtx извлекает объект транзакции (*bolt.Tx) из контекста
func TxFromCtx(ctx context.Context) (*bolt.Tx, error) {
	txAny := ctx.Value("tx")
	tx, ok := txAny.(*bolt.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}
