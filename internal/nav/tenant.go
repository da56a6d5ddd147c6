package nav

// DefaultTenant is the sentinel organization identifier meaning tenant
// selection has not completed. Freshly registered users are provisioned
// under it until they pick a hospital.
const DefaultTenant = "default"

// TenantSelectionPath is where tenant-scoped actions land while the
// session still carries the sentinel organization.
const TenantSelectionPath = "/onboarding/choose-hospital"

// Organization is the hospital instance a user belongs to in the
// multi-tenant deployment.
type Organization struct {
	ID        string
	Subdomain string
	Name      string
}

// NeedsSelection reports whether the organization is still the
// provisioning sentinel: absent entirely, carrying the default tenant id,
// or carrying the default subdomain. Callers apply it only where the
// route table marks an entry tenant-scoped; staff surfaces with
// pre-provisioned organizations skip the check deliberately.
func NeedsSelection(org *Organization) bool {
	if org == nil {
		return true
	}
	if org.ID == "" || org.ID == DefaultTenant {
		return true
	}
	return org.Subdomain == DefaultTenant
}
