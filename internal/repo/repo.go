// Package repo binds each entity schema to the generic record store and
// lifecycle manager, and owns the mapping between UI payload shapes and
// persisted rows.
package repo

import (
	"repairshop-backend/internal/lifecycle"
	"repairshop-backend/internal/model"
	"repairshop-backend/internal/store"
)

// Repos is the full set of entity repositories, built once at startup
// from a single store handle.
type Repos struct {
	Clients        *ClientRepo
	Equipments     *EquipmentRepo
	Parts          *PartRepo
	Technicians    *TechnicianRepo
	Orders         *OrderRepo
	ServiceTypes   *LookupRepo[model.ServiceType]
	PaymentMethods *LookupRepo[model.PaymentMethod]
}

// New wires every repository to the given store. Client and Equipment
// deletes consult the service-order dependent counts; everything else
// deactivates unconditionally.
func New(st store.Store) *Repos {
	return &Repos{
		Clients: &ClientRepo{
			records: st.Clients(),
			life:    lifecycle.NewManager("Client", st.Clients(), st.CountOrdersByClient),
		},
		Equipments: &EquipmentRepo{
			records: st.Equipments(),
			life:    lifecycle.NewManager("Equipment", st.Equipments(), st.CountOrdersByEquipment),
		},
		Parts: &PartRepo{
			records: st.Parts(),
			life:    lifecycle.NewManager("Part", st.Parts(), nil),
		},
		Technicians: &TechnicianRepo{
			records: st.Technicians(),
			life:    lifecycle.NewManager("Technician", st.Technicians(), nil),
		},
		Orders: &OrderRepo{
			records: st.Orders(),
			life:    lifecycle.NewManager("Service order", st.Orders(), nil),
		},
		ServiceTypes: &LookupRepo[model.ServiceType]{
			records: st.ServiceTypes(),
			life:    lifecycle.NewManager("Service type", st.ServiceTypes(), nil),
		},
		PaymentMethods: &LookupRepo[model.PaymentMethod]{
			records: st.PaymentMethods(),
			life:    lifecycle.NewManager("Payment method", st.PaymentMethods(), nil),
		},
	}
}
