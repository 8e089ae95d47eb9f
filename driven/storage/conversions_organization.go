package storage

import "sandbox-building-block/core/model"

//Organization
func organizationToStorage(item model.Organization) organization {
	return organization{ID: item.ID, Name: item.Name, Permissions: item.Permissions,
		CreatedBy: item.CreatedBy, LastModifiedBy: item.LastModifiedBy, Custom: item.Custom,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func organizationsToStorage(items []model.Organization) []organization {
	result := make([]organization, len(items))
	for i, item := range items {
		result[i] = organizationToStorage(item)
	}
	return result
}
