// Package main Civic Teams API
//
//	@title						Civic Teams API
//	@version					1.0
//	@description				Report local issues and coordinate the volunteer teams that resolve them.
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"
//
//	@tag.name					User
//	@tag.description			Registered citizens and volunteers
//
//	@tag.name					Issue
//	@tag.description			Issue reporting and lookup
//
//	@tag.name					Team
//	@tag.description			Volunteer teams and their assignments
//
//	@tag.name					Invitation
//	@tag.description			Team invitations
package main
