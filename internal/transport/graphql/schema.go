// Package graphql exposes the service layer over GraphQL.
//
// Resolvers forward raw inputs to the validation orchestrators and the
// services; every error they return is a *domain.Error whose
// Extensions method feeds the response envelope (statusCode,
// statusCodeClass, statusCodeMessage).
package graphql

// Schema is the GraphQL schema served at /graphql.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		cities: [City!]!
		city(id: Int!): City!
		cityByName(name: String!): City!

		pois: [Poi!]!
		poi(id: Int!): Poi!
		poiByName(name: String!): Poi!

		types: [Type!]!
		type(id: Int!): Type!
		typeByName(name: String!): Type!

		tags: [Tag!]!
		tag(id: Int!): Tag!
		tagByName(name: String!): Tag!

		roles: [Role!]!
		role(id: Int!): Role!
		roleByName(name: String!): Role!

		users: [User!]!
		user(id: Int!): User!
		userByName(username: String!): User!

		me: User!
	}

	type Mutation {
		createCity(input: CityInput!): City!
		updateCity(input: CityInput!): City!
		deleteCity(id: Int!): City!

		createPoi(input: PoiInput!): Poi!
		updatePoi(input: PoiInput!): Poi!
		deletePoi(id: Int!): Poi!

		createType(input: TypeInput!): Type!
		updateType(input: TypeInput!): Type!
		deleteType(id: Int!): Type!

		createTag(input: TagInput!): Tag!
		updateTag(input: TagInput!): Tag!
		deleteTag(id: Int!): Tag!

		createRole(input: RoleInput!): Role!
		updateRole(input: RoleInput!): Role!
		deleteRole(id: Int!): Role!

		register(input: UserInput!): User!
		updateUser(input: UserInput!): User!
		deleteUser(id: Int!): User!
		updateUserRoles(userId: Int!, roleIds: [Int!]!): User!

		login(email: String!, password: String!): AuthPayload!
	}

	type City {
		id: Int!
		name: String!
		latitude: String!
		longitude: String!
		picture: String
		user: User
		pois: [Poi!]!
	}

	type Poi {
		id: Int!
		name: String!
		address: String!
		latitude: String!
		longitude: String!
		picture: String
		city: City!
		type: Type!
		tags: [Tag!]!
	}

	type Type {
		id: Int!
		name: String!
		logo: String!
		color: String!
	}

	type Tag {
		id: Int!
		name: String!
		icon: String
	}

	type Role {
		id: Int!
		name: String!
	}

	type User {
		id: Int!
		username: String!
		email: String!
		roles: [Role!]!
	}

	type AuthPayload {
		token: String!
		user: User!
	}

	input RefInput {
		id: Int!
	}

	input CityInput {
		id: Int
		name: String!
		latitude: String!
		longitude: String!
		picture: String
		user: RefInput
	}

	input PoiInput {
		id: Int
		name: String!
		address: String!
		latitude: String!
		longitude: String!
		picture: String
		city: RefInput
		type: RefInput
		tags: [RefInput!]
	}

	input TypeInput {
		id: Int
		name: String!
		logo: String!
		color: String!
	}

	input TagInput {
		id: Int
		name: String!
		icon: String
	}

	input RoleInput {
		id: Int
		name: String!
	}

	input UserInput {
		id: Int
		username: String!
		email: String!
		password: String
		roles: [RefInput!]
	}
`
