package core

type Services struct {
	Product *ProductService
	Task    *TaskService
}

func NewServices(coll Collection) *Services {
	return &Services{
		Product: NewProductService(coll),
		Task:    NewTaskService(coll),
	}
}
