package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gestoria/admin-api/internal/core/domain"
)

const pagosCollection = "pagos"

type PagoRepository struct {
	coll *mongo.Collection
}

func NewPagoRepository(db *mongo.Database) *PagoRepository {
	return &PagoRepository{coll: db.Collection(pagosCollection)}
}

type pagoDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Fecha      time.Time          `bson:"fecha"`
	Tipo       string             `bson:"tipo"`
	Monto      float64            `bson:"monto"`
	Estado     string             `bson:"estado"`
	EmpleadoID string             `bson:"empleado_id"`
}

func (d pagoDoc) toDomain() *domain.Pago {
	return &domain.Pago{
		ID:         d.ID.Hex(),
		Fecha:      d.Fecha,
		Tipo:       d.Tipo,
		Monto:      d.Monto,
		Estado:     d.Estado,
		EmpleadoID: d.EmpleadoID,
	}
}

func (r *PagoRepository) Create(ctx context.Context, p *domain.Pago) (*domain.Pago, error) {
	doc := pagoDoc{
		Fecha:      p.Fecha,
		Tipo:       p.Tipo,
		Monto:      p.Monto,
		Estado:     p.Estado,
		EmpleadoID: p.EmpleadoID,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert pago: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *PagoRepository) ListAll(ctx context.Context) ([]*domain.Pago, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list all pagos: %w", err)
	}
	defer cursor.Close(ctx)

	var pagos []*domain.Pago
	for cursor.Next(ctx) {
		var doc pagoDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode pago: %w", err)
		}
		pagos = append(pagos, doc.toDomain())
	}
	return pagos, cursor.Err()
}
