package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gestoria/admin-api/internal/core/domain"
)

const empleadosCollection = "empleados"

type EmpleadoRepository struct {
	coll *mongo.Collection
}

func NewEmpleadoRepository(db *mongo.Database) *EmpleadoRepository {
	return &EmpleadoRepository{coll: db.Collection(empleadosCollection)}
}

type empleadoDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Nombre    string             `bson:"nombre"`
	Apellido  string             `bson:"apellido"`
	DNI       string             `bson:"dni"`
	Compania  string             `bson:"compania"`
	ClienteID string             `bson:"cliente_id,omitempty"`
}

func (d empleadoDoc) toDomain() *domain.Empleado {
	return &domain.Empleado{
		ID:        d.ID.Hex(),
		Nombre:    d.Nombre,
		Apellido:  d.Apellido,
		DNI:       d.DNI,
		Compania:  d.Compania,
		ClienteID: d.ClienteID,
	}
}

func (r *EmpleadoRepository) FindByDNI(ctx context.Context, dni string) (*domain.Empleado, error) {
	var doc empleadoDoc
	if err := r.coll.FindOne(ctx, bson.M{"dni": dni}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmpleadoNotFound
		}
		return nil, fmt.Errorf("find empleado by dni: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *EmpleadoRepository) Create(ctx context.Context, e *domain.Empleado) (*domain.Empleado, error) {
	doc := empleadoDoc{
		Nombre:    e.Nombre,
		Apellido:  e.Apellido,
		DNI:       e.DNI,
		Compania:  e.Compania,
		ClienteID: e.ClienteID,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert empleado: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *EmpleadoRepository) ListAll(ctx context.Context) ([]*domain.Empleado, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list all empleados: %w", err)
	}
	defer cursor.Close(ctx)

	var empleados []*domain.Empleado
	for cursor.Next(ctx) {
		var doc empleadoDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode empleado: %w", err)
		}
		empleados = append(empleados, doc.toDomain())
	}
	return empleados, cursor.Err()
}
