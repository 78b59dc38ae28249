package handlers

import "law_console_go/services"

// API bundles the services the HTTP layer depends on. One instance is built
// in main and shared by every route; handlers never touch the collection
// store directly.
type API struct {
	Queries *services.QueryService
	Cases   *services.CaseService
	Clients *services.ClientService
	Tasks   *services.TaskService
}

// NewAPI creates the handler set
func NewAPI(queries *services.QueryService, cases *services.CaseService, clients *services.ClientService, tasks *services.TaskService) *API {
	return &API{
		Queries: queries,
		Cases:   cases,
		Clients: clients,
		Tasks:   tasks,
	}
}
