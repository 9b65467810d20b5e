package repositories

// AgilizaDbRepository groups every query against the application database.
// Methods take an Executor so they can run on the pool or inside a
// transaction indifferently.
type AgilizaDbRepository struct{}

func NewAgilizaDbRepository() *AgilizaDbRepository {
	return &AgilizaDbRepository{}
}
