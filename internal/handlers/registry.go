package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	ProfileHandler     *ProfileHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	SavedJobHandler    *SavedJobHandler
}
