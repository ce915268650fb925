package store

// repositories binds every repository to the same querier.
type repositories struct {
	notes        *noteRepository
	clients      *clientRepository
	clientGroups *clientGroupRepository
}

func newRepositories(q querier) *repositories {
	return &repositories{
		notes:        &noteRepository{q: q},
		clients:      &clientRepository{q: q},
		clientGroups: &clientGroupRepository{q: q},
	}
}

func (r *repositories) Notes() NoteRepository {
	return r.notes
}

func (r *repositories) Clients() ClientRepository {
	return r.clients
}

func (r *repositories) ClientGroups() ClientGroupRepository {
	return r.clientGroups
}
