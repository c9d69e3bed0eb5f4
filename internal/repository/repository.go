package repository

type GenericRepository[T any] interface {
	Create(entity *T) error
	FindByID(id uint) (*T, error)
	Update(entity *T) error
	Count() (int64, error)
}
