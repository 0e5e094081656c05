package bolt

import (
	"context"

	"github.com/DRSN-tech/botstore-backend/internal/cfg"
	"github.com/DRSN-tech/botstore-backend/pkg/e"
	"github.com/DRSN-tech/botstore-backend/pkg/tr"
	"github.com/jimlawless/whereami"
	jsoniter "github.com/json-iterator/go"
	bolt "go.etcd.io/bbolt"
)

// Именованные слоты хранилища. Каждый слот — самостоятельная единица
// состояния, перезаписываемая целиком (last-writer-wins).
const (
	SlotProducts     = "products"
	SlotCategories   = "categories"
	SlotProductTypes = "productTypes"
	SlotCart         = "cart"
	SlotTheme        = "theme"
)

const bucketSlots = "slots"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SlotRepo реализует адаптер постоянного хранилища поверх bbolt:
// JSON-слоты в одном бакете, без версионирования и миграций.
type SlotRepo struct {
	db *bolt.DB
}

// Open открывает (или создаёт) файл хранилища и бакет слотов.
func Open(cfg *cfg.StoreCfg) (*SlotRepo, error) {
	db, err := bolt.Open(cfg.Path, cfg.FileMode, &bolt.Options{Timeout: cfg.OpenTimeout})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSlots))
		return err
	})
	if err != nil {
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &SlotRepo{db: db}, nil
}

func (r *SlotRepo) Close() error {
	return r.db.Close()
}

// Load десериализует слот в dest.
// Отсутствующий слот возвращает e.ErrSlotNotFound, битый JSON — ошибку
// декодирования; в обоих случаях вызывающий подставляет значение по умолчанию.
func (r *SlotRepo) Load(ctx context.Context, slot string, dest interface{}) error {
	var raw []byte
	err := r.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketSlots)).Get([]byte(slot)); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if raw == nil {
		return e.ErrSlotNotFound
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Save сериализует полное значение слота и перезаписывает предыдущее.
// Если в контексте есть открытая транзакция, запись присоединяется к ней.
func (r *SlotRepo) Save(ctx context.Context, slot string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tx, txErr := tr.TxFromCtx(ctx); txErr == nil {
		if err := tx.Bucket([]byte(bucketSlots)).Put([]byte(slot), raw); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		return nil
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSlots)).Put([]byte(slot), raw)
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// WithinTx выполняет fn в одной write-транзакции bbolt: все Save внутри
// fn либо фиксируются вместе, либо откатываются при ошибке.
func (r *SlotRepo) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return fn(context.WithValue(ctx, "tx", tx))
	})
}
