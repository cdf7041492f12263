package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobs4devs/vacancy-api/internal/core/domain"
)

const collectionVacancies = "vacancies"

// VacancyRepository persists vacancies in a single Mongo collection keyed by
// the vacancy UUID (_id). Write methods report affected-record counts so the
// service layer can treat "nothing written" as its own outcome.
type VacancyRepository struct {
	col *mongo.Collection
}

func NewVacancyRepository(db *mongo.Database) *VacancyRepository {
	return &VacancyRepository{col: db.Collection(collectionVacancies)}
}

// Insert stores one vacancy. A duplicate id is reported as a zero count, not
// an error: the caller cannot distinguish it from any other rejected write.
func (r *VacancyRepository) Insert(ctx context.Context, v *domain.Vacancy) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, v)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("insert vacancy: %w", err)
	}
	return 1, nil
}

// FindAll returns every vacancy. No pagination, no filtering; order is
// whatever the storage engine yields.
func (r *VacancyRepository) FindAll(ctx context.Context) ([]domain.Vacancy, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find vacancies: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]domain.Vacancy, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode vacancies: %w", err)
	}
	return items, nil
}

func (r *VacancyRepository) FindByID(ctx context.Context, id string) (*domain.Vacancy, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var v domain.Vacancy
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVacancyNotFound
		}
		return nil, fmt.Errorf("find vacancy: %w", err)
	}
	return &v, nil
}

// Replace overwrites the record identified by v.ID with all supplied fields.
func (r *VacancyRepository) Replace(ctx context.Context, v *domain.Vacancy) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": v.ID}, v)
	if err != nil {
		return 0, fmt.Errorf("replace vacancy: %w", err)
	}
	return res.MatchedCount, nil
}

func (r *VacancyRepository) Delete(ctx context.Context, id string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete vacancy: %w", err)
	}
	return res.DeletedCount, nil
}
