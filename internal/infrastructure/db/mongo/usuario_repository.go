package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gestoria/admin-api/internal/core/domain"
	"github.com/gestoria/admin-api/internal/core/ports"
)

const usuariosCollection = "usuarios"

// caseInsensitiveCollation matches the collation of the unique email index.
var caseInsensitiveCollation = &options.Collation{Locale: "en", Strength: 2}

// UsuarioRepository is the MongoDB credential store.
type UsuarioRepository struct {
	coll *mongo.Collection
}

func NewUsuarioRepository(db *mongo.Database) *UsuarioRepository {
	return &UsuarioRepository{coll: db.Collection(usuariosCollection)}
}

type usuarioDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Nombre       string             `bson:"nombre"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Rol          string             `bson:"rol"`
	Estado       bool               `bson:"estado"`
	FotoURL      string             `bson:"foto_url,omitempty"`
	CreadoEn     time.Time          `bson:"creado_en"`
}

func (d usuarioDoc) toDomain() *domain.Usuario {
	return &domain.Usuario{
		ID:           d.ID.Hex(),
		Nombre:       d.Nombre,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Rol:          d.Rol,
		Estado:       d.Estado,
		FotoURL:      d.FotoURL,
		CreadoEn:     d.CreadoEn,
	}
}

func (r *UsuarioRepository) FindByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	var doc usuarioDoc
	err := r.coll.FindOne(ctx, bson.M{"email": email},
		options.FindOne().SetCollation(caseInsensitiveCollation)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find usuario by email: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UsuarioRepository) FindByID(ctx context.Context, id string) (*domain.Usuario, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var doc usuarioDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find usuario: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UsuarioRepository) Create(ctx context.Context, u *domain.Usuario) (*domain.Usuario, error) {
	doc := usuarioDoc{
		Nombre:       u.Nombre,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Rol:          u.Rol,
		Estado:       u.Estado,
		FotoURL:      u.FotoURL,
		CreadoEn:     time.Now().UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert usuario: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *UsuarioRepository) Update(ctx context.Context, id string, upd ports.UsuarioUpdate) (*domain.Usuario, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	set := bson.M{}
	if upd.Nombre != nil {
		set["nombre"] = *upd.Nombre
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Rol != nil {
		set["rol"] = *upd.Rol
	}
	if upd.Estado != nil {
		set["estado"] = *upd.Estado
	}
	if upd.FotoURL != nil {
		set["foto_url"] = *upd.FotoURL
	}
	if upd.PasswordHash != nil {
		set["password_hash"] = *upd.PasswordHash
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	var doc usuarioDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update usuario: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UsuarioRepository) SetEstado(ctx context.Context, id string, estado bool) (*domain.Usuario, error) {
	return r.Update(ctx, id, ports.UsuarioUpdate{Estado: &estado})
}

func (r *UsuarioRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UsuarioRepository) List(ctx context.Context, filter ports.ListUsuariosFilter) ([]*domain.Usuario, int64, error) {
	query := bson.M{"rol": domain.RolUsuario}
	if filter.Filtro != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Filtro), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"nombre": re},
			bson.M{"email": re},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count usuarios: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "nombre", Value: 1}}).
		SetSkip(int64((filter.Pagina - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list usuarios: %w", err)
	}
	defer cursor.Close(ctx)

	var usuarios []*domain.Usuario
	for cursor.Next(ctx) {
		var doc usuarioDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode usuario: %w", err)
		}
		usuarios = append(usuarios, doc.toDomain())
	}
	return usuarios, total, cursor.Err()
}

func (r *UsuarioRepository) ListAll(ctx context.Context) ([]*domain.Usuario, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list all usuarios: %w", err)
	}
	defer cursor.Close(ctx)

	var usuarios []*domain.Usuario
	for cursor.Next(ctx) {
		var doc usuarioDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode usuario: %w", err)
		}
		usuarios = append(usuarios, doc.toDomain())
	}
	return usuarios, cursor.Err()
}
