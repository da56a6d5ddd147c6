package nav

// Role-set shorthands used across the table. Declared once so adjacent
// screens of the same area cannot drift apart.
var (
	admins       = []Role{RoleAdmin, RoleSuperAdmin}
	clinical     = []Role{RoleAdmin, RoleSuperAdmin, RoleDoctor, RoleNurse}
	frontDesk    = []Role{RoleAdmin, RoleSuperAdmin, RoleReceptionist}
	wardStaff    = []Role{RoleAdmin, RoleSuperAdmin, RoleNurse}
	patientFlow  = []Role{RoleAdmin, RoleSuperAdmin, RoleDoctor, RoleNurse, RoleReceptionist}
	pharmacy     = []Role{RoleAdmin, RoleSuperAdmin, RolePharmacist}
	prescribers  = []Role{RoleAdmin, RoleSuperAdmin, RolePharmacist, RoleDoctor}
	lab          = []Role{RoleAdmin, RoleSuperAdmin, RoleLabTechnician}
	labOrdering  = []Role{RoleAdmin, RoleSuperAdmin, RoleLabTechnician, RoleDoctor}
	finance      = []Role{RoleAdmin, RoleSuperAdmin, RoleAccountant}
	billingDesk  = []Role{RoleAdmin, RoleSuperAdmin, RoleAccountant, RoleReceptionist}
	teleCare     = []Role{RoleAdmin, RoleSuperAdmin, RoleDoctor, RolePatient}
	doctors      = []Role{RoleAdmin, RoleSuperAdmin, RoleDoctor}
	patientsOnly = []Role{RolePatient}
)

func public(path, view string) RouteEntry {
	return RouteEntry{Path: path, View: view, Acc: AccessPublic}
}

func anyRole(path, view string) RouteEntry {
	return RouteEntry{Path: path, View: view, Acc: AccessAny}
}

func restricted(path, view string, roles []Role) RouteEntry {
	return RouteEntry{Path: path, View: view, Acc: AccessRoles, Roles: roles}
}

func portal(path, view string) RouteEntry {
	return RouteEntry{Path: path, View: view, Acc: AccessRoles, Roles: patientsOnly, TenantScoped: true}
}

// DefaultTable declares every navigable screen of the console and who may
// reach it. This is the single authoritative enumeration: the HTTP layer
// mounts exactly these paths, the fallback catches everything else, and
// `routes validate` re-checks the invariants at deploy time.
func DefaultTable() *Table {
	t, err := NewTable(DefaultEntries())
	if err != nil {
		// The default table is compiled-in configuration; an invalid one
		// is a programming error caught by tests and `routes validate`.
		panic(err)
	}
	return t
}

func DefaultEntries() []RouteEntry {
	return []RouteEntry{
		// Public surface: reachable without a session.
		public(LandingPath, "landing"),
		public(LoginPath, "login"),
		public("/register", "register"),
		public("/forgot-password", "forgot-password"),
		public("/doctors/availability", "doctor-availability"),

		// Generic authenticated surface. The dashboard bounces every role
		// with a canonical home of its own; only unrecognized roles stay.
		{Path: DashboardPath, View: "dashboard", Acc: AccessAny, Guards: []Guard{HomeJump()}},
		anyRole("/profile", "profile"),
		anyRole("/settings", "settings"),
		anyRole("/notifications", "notifications"),
		anyRole("/messages", "messages"),
		anyRole("/help", "help"),

		// Patients.
		restricted("/patients", "patient-list", patientFlow),
		restricted("/patients/register", "patient-register", frontDesk),
		restricted("/patients/medical-records", "medical-records", clinical),
		restricted("/patients/admissions", "admissions", patientFlow),
		restricted("/patients/discharge-summaries", "discharge-summaries", clinical),
		restricted("/patients/referrals", "referrals", clinical),

		// Queues. Each station has its own screen; the shared display
		// board is open to any signed-in staff terminal.
		restricted("/queue/reception", "queue-reception", frontDesk),
		restricted("/queue/triage", "queue-triage", wardStaff),
		restricted("/queue/doctor", "queue-doctor", doctors),
		anyRole("/queue/display", "queue-display"),

		// Appointments. Admins skip the generic calendar and land on the
		// administrative view; everyone else falls through to the allow
		// list below.
		{
			Path:   "/appointments",
			View:   "appointments",
			Acc:    AccessRoles,
			Roles:  patientFlow,
			Guards: []Guard{RoleRedirect("/admin/appointments", RoleAdmin, RoleSuperAdmin)},
		},
		restricted("/appointments/calendar", "appointment-calendar", patientFlow),
		restricted("/appointments/requests", "appointment-requests", frontDesk),

		// Administration.
		restricted("/admin/appointments", "admin-appointments", admins),
		restricted("/admin/doctors", "admin-doctors", admins),
		restricted("/admin/staff", "admin-staff", admins),
		restricted("/admin/departments", "admin-departments", admins),
		restricted("/admin/services", "admin-services", admins),
		restricted("/admin/inventory", "admin-inventory", admins),
		restricted("/admin/reports", "admin-reports", admins),
		restricted("/admin/settings", "admin-settings", admins),
		restricted("/admin/audit-log", "admin-audit-log", []Role{RoleSuperAdmin}),
		restricted("/admin/organizations", "admin-organizations", []Role{RoleSuperAdmin}),
		restricted("/admin/billing-codes", "admin-billing-codes", finance),

		// Pharmacy.
		restricted("/pharmacy", "pharmacy-dashboard", pharmacy),
		restricted("/pharmacy/prescriptions", "pharmacy-prescriptions", prescribers),
		restricted("/pharmacy/dispense", "pharmacy-dispense", pharmacy),
		restricted("/pharmacy/inventory", "pharmacy-inventory", pharmacy),
		restricted("/pharmacy/purchase-orders", "pharmacy-purchase-orders", pharmacy),
		restricted("/pharmacy/suppliers", "pharmacy-suppliers", pharmacy),
		restricted("/pharmacy/returns", "pharmacy-returns", pharmacy),

		// Laboratory.
		restricted("/laboratory/dashboard", "lab-dashboard", lab),
		restricted("/laboratory/orders", "lab-orders", labOrdering),
		restricted("/laboratory/samples", "lab-samples", lab),
		restricted("/laboratory/results", "lab-results", labOrdering),
		restricted("/laboratory/reports", "lab-reports", labOrdering),
		restricted("/laboratory/quality-control", "lab-quality-control", lab),

		// Billing.
		restricted("/billing/management", "billing-management", finance),
		restricted("/billing/invoices", "billing-invoices", billingDesk),
		restricted("/billing/payments", "billing-payments", finance),
		restricted("/billing/insurance-claims", "billing-insurance-claims", finance),
		restricted("/billing/price-lists", "billing-price-lists", finance),
		restricted("/billing/reports", "billing-reports", finance),

		// Telemedicine. The waiting room is the patient side and is
		// tenant-scoped like the rest of the patient surface.
		restricted("/telemedicine", "telemedicine", teleCare),
		restricted("/telemedicine/schedule", "telemedicine-schedule", doctors),
		restricted("/telemedicine/sessions", "telemedicine-sessions", teleCare),
		{
			Path:         "/telemedicine/waiting-room",
			View:         "telemedicine-waiting-room",
			Acc:          AccessRoles,
			Roles:        patientsOnly,
			TenantScoped: true,
		},

		// Patient portal: every screen is tenant-scoped, a patient without
		// a chosen hospital is advised into onboarding and blocked from
		// completing bookings.
		portal("/portal", "portal-home"),
		portal("/portal/appointments", "portal-appointments"),
		portal("/portal/book-appointment", "portal-book-appointment"),
		portal("/portal/prescriptions", "portal-prescriptions"),
		portal("/portal/lab-results", "portal-lab-results"),
		portal("/portal/invoices", "portal-invoices"),
		portal("/portal/medical-records", "portal-medical-records"),
		portal("/portal/messages", "portal-messages"),
		portal("/portal/profile", "portal-profile"),

		// Onboarding. Hospital selection itself cannot require a selected
		// tenant.
		anyRole(TenantSelectionPath, "choose-hospital"),
		anyRole("/onboarding/profile", "onboarding-profile"),
		restricted("/onboarding/organization", "onboarding-organization", admins),

		// Wards and nursing.
		restricted("/wards", "wards", wardStaff),
		restricted("/wards/beds", "ward-beds", []Role{RoleAdmin, RoleSuperAdmin, RoleNurse, RoleReceptionist}),
		restricted("/wards/assignments", "ward-assignments", wardStaff),
		restricted("/nursing/vitals", "nursing-vitals", wardStaff),
		restricted("/nursing/medication-rounds", "nursing-medication-rounds", wardStaff),
		restricted("/nursing/care-plans", "nursing-care-plans", clinical),

		// Emergency and ambulance.
		restricted("/emergency", "emergency", clinical),
		restricted("/ambulance", "ambulance", frontDesk),
		restricted("/ambulance/dispatch", "ambulance-dispatch", frontDesk),
		restricted("/ambulance/fleet", "ambulance-fleet", admins),

		// Doctors and consultations.
		restricted("/doctors", "doctor-list", frontDesk),
		restricted("/doctors/schedule", "doctor-schedule", doctors),
		restricted("/doctors/leave", "doctor-leave", doctors),
		restricted("/consultations", "consultations", doctors),
		restricted("/consultations/history", "consultation-history", clinical),
		restricted("/prescriptions/new", "prescription-new", doctors),

		// Inventory and stores.
		restricted("/inventory", "inventory", []Role{RoleAdmin, RoleSuperAdmin, RolePharmacist, RoleNurse}),
		restricted("/inventory/requisitions", "inventory-requisitions", []Role{RoleAdmin, RoleSuperAdmin, RolePharmacist, RoleNurse, RoleReceptionist}),

		// Staff management.
		restricted("/staff/attendance", "staff-attendance", admins),
		restricted("/staff/payroll", "staff-payroll", finance),
		restricted("/staff/leave-requests", "staff-leave-requests", admins),

		// Reports.
		restricted("/reports/clinical", "reports-clinical", doctors),
		restricted("/reports/financial", "reports-financial", finance),
		restricted("/reports/operational", "reports-operational", admins),
	}
}
