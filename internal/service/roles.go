package service

const (
	RoleCEO              = "CEO"
	RoleAdmin            = "ADMIN"
	RoleAgencyAdmin      = "AGENCY_ADMIN"
	RoleAgencyManager    = "AGENCY_MANAGER"
	RoleBroker           = "BROKER"
	RoleIndependentOwner = "INDEPENDENT_OWNER"
	RoleOwner            = "PROPRIETARIO"
	RoleTenant           = "INQUILINO"
	RoleBuildingManager  = "BUILDING_MANAGER"
	RoleLegalAuditor     = "LEGAL_AUDITOR"
	RoleRepresentative   = "REPRESENTATIVE"
	RolePlatformManager  = "PLATFORM_MANAGER"
	RoleAPIClient        = "API_CLIENT"

	// RoleAgency is a party role only; agency staff sign in as AGENCY_ADMIN or AGENCY_MANAGER.
	RoleAgency = "AGENCY"
)

var roleLabels = map[string]string{
	RoleCEO:              "CEO",
	RoleAdmin:            "Administrador",
	RoleAgencyAdmin:      "Diretor de Agência",
	RoleAgencyManager:    "Gerente de Agência",
	RoleBroker:           "Corretor",
	RoleIndependentOwner: "Proprietário Independente",
	RoleOwner:            "Proprietário",
	RoleTenant:           "Inquilino",
	RoleBuildingManager:  "Síndico",
	RoleLegalAuditor:     "Auditor Legal",
	RoleRepresentative:   "Representante",
	RolePlatformManager:  "Gerente de Plataforma",
	RoleAPIClient:        "Cliente API",
	RoleAgency:           "Imobiliária",
}

// RoleLabel returns the Portuguese label for role, or role itself when it has none.
func RoleLabel(role string) string {
	if label, ok := roleLabels[role]; ok {
		return label
	}
	return role
}

// IsPlatformRole reports whether role manages the platform itself rather than an agency.
func IsPlatformRole(role string) bool {
	switch role {
	case RoleCEO, RoleAdmin, RolePlatformManager:
		return true
	default:
		return false
	}
}

func isKnownUserRole(role string) bool {
	_, ok := roleLabels[role]
	return ok && role != RoleAgency
}

func isPartyRole(role string) bool {
	switch role {
	case RoleTenant, RoleOwner, RoleBroker, RoleAgency, RoleIndependentOwner:
		return true
	default:
		return false
	}
}

func requiresCRECI(role string) bool {
	return role == RoleBroker || role == RoleAgency
}
