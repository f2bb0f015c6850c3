package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/boltdb/bolt"

	"repairshop-backend/internal/model"
)

// Bucket names, one per entity.
var boltBuckets = [][]byte{
	[]byte("clients"),
	[]byte("equipments"),
	[]byte("parts"),
	[]byte("technicians"),
	[]byte("service_orders"),
	[]byte("service_types"),
	[]byte("payment_methods"),
}

// boltStore implements Store over a local Bolt file: one bucket per
// entity, JSON-encoded rows keyed by a big-endian sequence id. It is the
// fallback medium for installs where the SQLite file cannot be used, and
// must be observationally identical to the relational backend.
type boltStore struct {
	db *bolt.DB

	clients        Records[model.Client]
	equipments     Records[model.Equipment]
	parts          Records[model.Part]
	technicians    Records[model.Technician]
	orders         Records[model.ServiceOrder]
	serviceTypes   Records[model.ServiceType]
	paymentMethods Records[model.PaymentMethod]
}

// OpenBoltStore opens (creating if needed) the key-value backend at path.
func OpenBoltStore(path string) (Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt store at %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range boltBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("creating bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &boltStore{
		db:             db,
		clients:        newBoltRecords[model.Client, *model.Client](db, "clients"),
		equipments:     newBoltRecords[model.Equipment, *model.Equipment](db, "equipments"),
		parts:          newBoltRecords[model.Part, *model.Part](db, "parts"),
		technicians:    newBoltRecords[model.Technician, *model.Technician](db, "technicians"),
		orders:         newBoltRecords[model.ServiceOrder, *model.ServiceOrder](db, "service_orders"),
		serviceTypes:   newBoltRecords[model.ServiceType, *model.ServiceType](db, "service_types"),
		paymentMethods: newBoltRecords[model.PaymentMethod, *model.PaymentMethod](db, "payment_methods"),
	}, nil
}

func (s *boltStore) Clients() Records[model.Client]               { return s.clients }
func (s *boltStore) Equipments() Records[model.Equipment]         { return s.equipments }
func (s *boltStore) Parts() Records[model.Part]                   { return s.parts }
func (s *boltStore) Technicians() Records[model.Technician]       { return s.technicians }
func (s *boltStore) Orders() Records[model.ServiceOrder]          { return s.orders }
func (s *boltStore) ServiceTypes() Records[model.ServiceType]     { return s.serviceTypes }
func (s *boltStore) PaymentMethods() Records[model.PaymentMethod] { return s.paymentMethods }

func (s *boltStore) CountOrdersByClient(ctx context.Context, clientID int64) (int64, error) {
	return s.countOrders(func(o *model.ServiceOrder) bool { return o.ClientID == clientID })
}

func (s *boltStore) CountOrdersByEquipment(ctx context.Context, equipmentID int64) (int64, error) {
	return s.countOrders(func(o *model.ServiceOrder) bool { return o.EquipmentID == equipmentID })
}

func (s *boltStore) countOrders(match func(*model.ServiceOrder) bool) (int64, error) {
	var n int64
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte("service_orders")).ForEach(func(_, v []byte) error {
			var o model.ServiceOrder
			if err := json.Unmarshal(v, &o); err != nil {
				return fmt.Errorf("decoding service order: %w", err)
			}
			if match(&o) {
				n++
			}
			return nil
		})
	})
	return n, err
}

func (s *boltStore) CountActiveTechnicians(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte("technicians")).ForEach(func(_, v []byte) error {
			var t model.Technician
			if err := json.Unmarshal(v, &t); err != nil {
				return fmt.Errorf("decoding technician: %w", err)
			}
			if t.IsActive {
				n++
			}
			return nil
		})
	})
	return n, err
}

func (s *boltStore) Close() error { return s.db.Close() }

// boltRecords is the generic key-value adapter for one entity.
type boltRecords[T any, PT entityPtr[T]] struct {
	db     *bolt.DB
	bucket []byte
}

func newBoltRecords[T any, PT entityPtr[T]](db *bolt.DB, bucket string) Records[T] {
	return &boltRecords[T, PT]{db: db, bucket: []byte(bucket)}
}

func itob(id int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}

func (r *boltRecords[T, PT]) Get(ctx context.Context, id int64) (*T, error) {
	var rec T
	err := r.db.View(func(tx *bolt.Tx) error {
		return r.load(tx, id, &rec)
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *boltRecords[T, PT]) load(tx *bolt.Tx, id int64, dst *T) error {
	v := tx.Bucket(r.bucket).Get(itob(id))
	if v == nil {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return fmt.Errorf("decoding %s record %d: %w", r.bucket, id, err)
	}
	return nil
}

func (r *boltRecords[T, PT]) List(ctx context.Context, f ListFilter) ([]T, error) {
	var recs []T
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(r.bucket).ForEach(func(_, v []byte) error {
			var rec T
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("decoding %s record: %w", r.bucket, err)
			}
			if f.ActiveOnly && !PT(&rec).Active() {
				return nil
			}
			recs = append(recs, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(recs, func(i, j int) bool {
		pi, pj := PT(&recs[i]), PT(&recs[j])
		if pi.SortKey() != pj.SortKey() {
			return pi.SortKey() < pj.SortKey()
		}
		return pi.Active() && !pj.Active()
	})
	return recs, nil
}

func (r *boltRecords[T, PT]) Insert(ctx context.Context, rec *T) (*T, error) {
	p := PT(rec)
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(r.bucket)
		if err := r.checkUnique(b, p, 0); err != nil {
			return err
		}
		seq, err := b.NextSequence()
		if err != nil {
			return fmt.Errorf("allocating id in %s: %w", r.bucket, err)
		}
		now := time.Now().UTC()
		p.SetEntityID(int64(seq))
		p.SetActiveFlag(true)
		p.SetTimestamps(now, now)
		return r.put(b, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *boltRecords[T, PT]) Update(ctx context.Context, id int64, rec *T) (*T, error) {
	p := PT(rec)
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(r.bucket)
		var existing T
		if err := r.load(tx, id, &existing); err != nil {
			return err
		}
		if err := r.checkUnique(b, p, id); err != nil {
			return err
		}
		p.SetEntityID(id)
		p.SetActiveFlag(PT(&existing).Active())
		p.SetTimestamps(PT(&existing).CreatedTime(), time.Now().UTC())
		return r.put(b, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *boltRecords[T, PT]) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(r.bucket)
		var rec T
		if err := r.load(tx, id, &rec); err != nil {
			return err
		}
		p := PT(&rec)
		p.SetActiveFlag(active)
		p.SetTimestamps(p.CreatedTime(), time.Now().UTC())
		return r.put(b, &rec)
	})
}

func (r *boltRecords[T, PT]) HardDelete(ctx context.Context, id int64) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(r.bucket)
		if b.Get(itob(id)) == nil {
			return fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		return b.Delete(itob(id))
	})
}

// checkUnique scans the bucket for another record carrying the same
// unique-key value. Linear, but the store is local and single-writer.
func (r *boltRecords[T, PT]) checkUnique(b *bolt.Bucket, rec PT, selfID int64) error {
	column, value := rec.UniqueKey()
	if value == "" {
		return nil
	}
	return b.ForEach(func(_, v []byte) error {
		var other T
		if err := json.Unmarshal(v, &other); err != nil {
			return fmt.Errorf("decoding %s record: %w", r.bucket, err)
		}
		po := PT(&other)
		if po.EntityID() == selfID {
			return nil
		}
		if _, ov := po.UniqueKey(); ov == value {
			return fmt.Errorf("%w: %s %q already registered", ErrDuplicateKey, column, value)
		}
		return nil
	})
}

func (r *boltRecords[T, PT]) put(b *bolt.Bucket, rec *T) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding %s record: %w", r.bucket, err)
	}
	return b.Put(itob(PT(rec).EntityID()), data)
}
