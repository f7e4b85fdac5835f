package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/ports"
)

const clientesCollection = "clientes"

type ClienteRepository struct {
	coll *mongo.Collection
}

func NewClienteRepository(db *mongo.Database) *ClienteRepository {
	return &ClienteRepository{coll: db.Collection(clientesCollection)}
}

type clienteDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Nombre      string             `bson:"nombre"`
	Apellido    string             `bson:"apellido"`
	Email       string             `bson:"email,omitempty"`
	Profesion   string             `bson:"profesion,omitempty"`
	RazonSocial string             `bson:"razon_social,omitempty"`
	Compania    string             `bson:"compania,omitempty"`
	CUIT        string             `bson:"cuit"`
	DNI         string             `bson:"dni"`
	Telefono    string             `bson:"telefono,omitempty"`
	Estado      bool               `bson:"estado"`
	UsuarioID   string             `bson:"usuario_id,omitempty"`
}

func (d clienteDoc) toDomain() *domain.Cliente {
	return &domain.Cliente{
		ID:          d.ID.Hex(),
		Nombre:      d.Nombre,
		Apellido:    d.Apellido,
		Email:       d.Email,
		Profesion:   d.Profesion,
		RazonSocial: d.RazonSocial,
		Compania:    d.Compania,
		CUIT:        d.CUIT,
		DNI:         d.DNI,
		Telefono:    d.Telefono,
		Estado:      d.Estado,
		UsuarioID:   d.UsuarioID,
	}
}

func (r *ClienteRepository) FindByID(ctx context.Context, id string) (*domain.Cliente, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClienteNotFound
	}

	var doc clienteDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClienteNotFound
		}
		return nil, fmt.Errorf("find cliente: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ClienteRepository) FindByUsuarioID(ctx context.Context, usuarioID string) (*domain.Cliente, error) {
	var doc clienteDoc
	if err := r.coll.FindOne(ctx, bson.M{"usuario_id": usuarioID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClienteNotFound
		}
		return nil, fmt.Errorf("find cliente by usuario: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ClienteRepository) Create(ctx context.Context, c *domain.Cliente) (*domain.Cliente, error) {
	doc := clienteDoc{
		Nombre:      c.Nombre,
		Apellido:    c.Apellido,
		Email:       c.Email,
		Profesion:   c.Profesion,
		RazonSocial: c.RazonSocial,
		Compania:    c.Compania,
		CUIT:        c.CUIT,
		DNI:         c.DNI,
		Telefono:    c.Telefono,
		Estado:      c.Estado,
		UsuarioID:   c.UsuarioID,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert cliente: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ClienteRepository) Update(ctx context.Context, id string, upd ports.ClienteUpdate) (*domain.Cliente, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClienteNotFound
	}

	set := bson.M{}
	if upd.Nombre != nil {
		set["nombre"] = *upd.Nombre
	}
	if upd.Apellido != nil {
		set["apellido"] = *upd.Apellido
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Profesion != nil {
		set["profesion"] = *upd.Profesion
	}
	if upd.Compania != nil {
		set["compania"] = *upd.Compania
	}
	if upd.Telefono != nil {
		set["telefono"] = *upd.Telefono
	}
	if upd.Estado != nil {
		set["estado"] = *upd.Estado
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	var doc clienteDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClienteNotFound
		}
		return nil, fmt.Errorf("update cliente: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ClienteRepository) SetEstado(ctx context.Context, id string, estado bool) error {
	_, err := r.Update(ctx, id, ports.ClienteUpdate{Estado: &estado})
	return err
}

func (r *ClienteRepository) List(ctx context.Context, filter ports.ListClientesFilter) ([]*domain.Cliente, int64, error) {
	query := bson.M{"estado": true}
	if filter.Filtro != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Filtro), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"nombre": re},
			bson.M{"profesion": re},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count clientes: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetSkip(int64((filter.Pagina - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list clientes: %w", err)
	}
	defer cursor.Close(ctx)

	var clientes []*domain.Cliente
	for cursor.Next(ctx) {
		var doc clienteDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode cliente: %w", err)
		}
		clientes = append(clientes, doc.toDomain())
	}
	return clientes, total, cursor.Err()
}

func (r *ClienteRepository) ListAll(ctx context.Context) ([]*domain.Cliente, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list all clientes: %w", err)
	}
	defer cursor.Close(ctx)

	var clientes []*domain.Cliente
	for cursor.Next(ctx) {
		var doc clienteDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode cliente: %w", err)
		}
		clientes = append(clientes, doc.toDomain())
	}
	return clientes, cursor.Err()
}
