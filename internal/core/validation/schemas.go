package validation

import "github.com/aqarcrm/aqarcrm/internal/storage"

// collectionSchemas pins the minimum shape a snapshot must have before it may
// replace local data. Schemas are deliberately loose: they reject payloads of
// the wrong shape, not unfamiliar extra fields.
var collectionSchemas = map[string]string{
	storage.KeyProperties: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["id", "title", "type", "status", "location"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"title": {"type": "string"},
				"type": {"type": "string"},
				"status": {"type": "string"},
				"location": {"type": "string"},
				"price": {"type": "number", "minimum": 0},
				"surface": {"type": "number", "minimum": 0}
			}
		}
	}`,
	storage.KeyClients: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["id", "name", "role", "status"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"name": {"type": "string"},
				"role": {"type": "string"},
				"status": {"type": "string"},
				"interactions": {"type": "array"}
			}
		}
	}`,
	storage.KeyContracts: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["id", "property_id", "tenant_id", "start_date", "end_date"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"monthly_rent": {"type": "number", "minimum": 0}
			}
		}
	}`,
	storage.KeyPayments: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["id", "contract_id", "amount", "due_date", "status"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"amount": {"type": "number"}
			}
		}
	}`,
	storage.KeyMaintenance: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["id", "property_id", "title", "category", "status"],
			"properties": {
				"id": {"type": "string", "minLength": 1}
			}
		}
	}`,
	storage.KeyVisits: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["id", "property_id", "client_id", "scheduled_at", "status"],
			"properties": {
				"id": {"type": "string", "minLength": 1}
			}
		}
	}`,
}
