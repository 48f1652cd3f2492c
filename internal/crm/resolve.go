package crm

// Soft references are advisory: deleting a referenced record leaves
// orphans whose lookups resolve to a placeholder label, never an error.

// ClientNameByID resolves a client soft reference to a display name.
func (s *Service) ClientNameByID(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.data.Clients {
		if c.ID == id {
			return c.Name
		}
	}
	return "Unknown Client"
}

// EmployeeNameByID resolves an assignee soft reference to a display name.
func (s *Service) EmployeeNameByID(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.data.Employees {
		if e.ID == id {
			return e.Name
		}
	}
	return "Unassigned"
}
