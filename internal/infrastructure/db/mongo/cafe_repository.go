package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dogukan2201/ChairUpBackend/internal/core/domain"
)

const (
	cafeCollection     = "cafes"
	employeeCollection = "employees"
)

type CafeRepository struct {
	coll *mongo.Collection
}

func NewCafeRepository(db *mongo.Database) *CafeRepository {
	return &CafeRepository{coll: db.Collection(cafeCollection)}
}

type cafeDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Address     string             `bson:"address"`
	PhoneNumber string             `bson:"phoneNumber"`
	Location    domain.GeoPoint    `bson:"location"`
	Menu        []domain.MenuItem  `bson:"menu"`
	OwnerID     primitive.ObjectID `bson:"ownerId"`
	IsActive    bool               `bson:"isActive"`
	CreatedAt   int64              `bson:"createdAt"`
	UpdatedAt   int64              `bson:"updatedAt"`
}

func (d cafeDoc) toDomain() *domain.Cafe {
	return &domain.Cafe{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Address:     d.Address,
		PhoneNumber: d.PhoneNumber,
		Location:    d.Location,
		Menu:        d.Menu,
		OwnerID:     d.OwnerID.Hex(),
		IsActive:    d.IsActive,
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
}

func (r *CafeRepository) Create(ctx context.Context, cafe *domain.Cafe) (*domain.Cafe, error) {
	ownerID, err := primitive.ObjectIDFromHex(cafe.OwnerID)
	if err != nil {
		return nil, domain.ErrOwnerNotFound
	}

	doc := cafeDoc{
		Name:        cafe.Name,
		Address:     cafe.Address,
		PhoneNumber: cafe.PhoneNumber,
		Location:    cafe.Location,
		Menu:        cafe.Menu,
		OwnerID:     ownerID,
		IsActive:    cafe.IsActive,
		CreatedAt:   cafe.CreatedAt.Unix(),
		UpdatedAt:   cafe.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert cafe: %w", err)
	}

	created := *cafe
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *CafeRepository) FindByID(ctx context.Context, id string) (*domain.Cafe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var doc cafeDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find cafe: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CafeRepository) FindAll(ctx context.Context) ([]*domain.Cafe, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list cafes: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Cafe
	for cursor.Next(ctx) {
		var doc cafeDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode cafe: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate cafes: %w", err)
	}
	return out, nil
}

func (r *CafeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete cafe: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EmployeeRepository persists café employees.
type EmployeeRepository struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{coll: db.Collection(employeeCollection)}
}

type employeeDoc struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	FirstName    string               `bson:"firstName"`
	LastName     string               `bson:"lastName"`
	Email        string               `bson:"email"`
	PhoneNumber  string               `bson:"phoneNumber"`
	PasswordHash string               `bson:"password"`
	CafeID       primitive.ObjectID   `bson:"cafeId"`
	OrderHistory []primitive.ObjectID `bson:"orderHistory"`
	IsActive     bool                 `bson:"isActive"`
	CreatedAt    int64                `bson:"createdAt"`
	UpdatedAt    int64                `bson:"updatedAt"`
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	cafeID, err := primitive.ObjectIDFromHex(e.CafeID)
	if err != nil {
		return nil, domain.ErrCafeNotFound
	}

	doc := employeeDoc{
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		PhoneNumber:  e.PhoneNumber,
		PasswordHash: e.PasswordHash,
		CafeID:       cafeID,
		OrderHistory: []primitive.ObjectID{},
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt.Unix(),
		UpdatedAt:    e.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	created := *e
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	if created.OrderHistory == nil {
		created.OrderHistory = []string{}
	}
	return &created, nil
}
