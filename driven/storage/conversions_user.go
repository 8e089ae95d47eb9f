package storage

import "sandbox-building-block/core/model"

//User
func userFromStorage(item user) model.User {
	return model.User{Username: item.Username, Custom: item.Custom}
}

func usersFromStorage(items []user) []model.User {
	result := make([]model.User, len(items))
	for i, item := range items {
		result[i] = userFromStorage(item)
	}
	return result
}
