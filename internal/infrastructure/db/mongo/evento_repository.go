package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/ports"
)

const eventosCollection = "eventos"

type EventoRepository struct {
	coll *mongo.Collection
}

func NewEventoRepository(db *mongo.Database) *EventoRepository {
	return &EventoRepository{coll: db.Collection(eventosCollection)}
}

type eventoDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Fecha     time.Time          `bson:"fecha"`
	Hora      string             `bson:"hora"`
	Texto     string             `bson:"texto"`
	UsuarioID string             `bson:"usuario_id"`
}

func (d eventoDoc) toDomain() *domain.Evento {
	return &domain.Evento{
		ID:        d.ID.Hex(),
		Fecha:     d.Fecha,
		Hora:      d.Hora,
		Texto:     d.Texto,
		UsuarioID: d.UsuarioID,
	}
}

func (r *EventoRepository) List(ctx context.Context, filter ports.ListEventosFilter) ([]*domain.Evento, error) {
	day := filter.Fecha.Truncate(24 * time.Hour)
	query := bson.M{
		"usuario_id": filter.UsuarioID,
		"fecha":      bson.M{"$gte": day, "$lt": day.Add(24 * time.Hour)},
	}

	// Hora is a zero-padded "HH:MM" string, so lexicographic bounds match
	// chronological order.
	hora := bson.M{}
	if filter.Desde != "" {
		hora["$gte"] = filter.Desde
	}
	if filter.Hasta != "" {
		hora["$lte"] = filter.Hasta
	}
	if len(hora) > 0 {
		query["hora"] = hora
	}

	opts := options.Find().SetSort(bson.D{{Key: "hora", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list eventos: %w", err)
	}
	defer cursor.Close(ctx)

	var eventos []*domain.Evento
	for cursor.Next(ctx) {
		var doc eventoDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode evento: %w", err)
		}
		eventos = append(eventos, doc.toDomain())
	}
	return eventos, cursor.Err()
}

func (r *EventoRepository) Create(ctx context.Context, e *domain.Evento) (*domain.Evento, error) {
	doc := eventoDoc{
		Fecha:     e.Fecha,
		Hora:      e.Hora,
		Texto:     e.Texto,
		UsuarioID: e.UsuarioID,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert evento: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *EventoRepository) Update(ctx context.Context, id, usuarioID string, upd ports.EventoUpdate) (*domain.Evento, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventoNotFound
	}

	set := bson.M{}
	if upd.Fecha != nil {
		set["fecha"] = *upd.Fecha
	}
	if upd.Hora != nil {
		set["hora"] = *upd.Hora
	}
	if upd.Texto != nil {
		set["texto"] = *upd.Texto
	}

	filter := bson.M{"_id": oid, "usuario_id": usuarioID}
	if len(set) == 0 {
		var doc eventoDoc
		if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, domain.ErrEventoNotFound
			}
			return nil, fmt.Errorf("find evento: %w", err)
		}
		return doc.toDomain(), nil
	}

	var doc eventoDoc
	err = r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventoNotFound
		}
		return nil, fmt.Errorf("update evento: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *EventoRepository) Delete(ctx context.Context, id, usuarioID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEventoNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "usuario_id": usuarioID})
	if err != nil {
		return fmt.Errorf("delete evento: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEventoNotFound
	}
	return nil
}
