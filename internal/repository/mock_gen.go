// internal/repository/mock_gen.go
package repository

//go:generate mockgen -typed -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -typed -source=./invite.go -destination=../mocks/mock_invite_repository.go -package=mocks InviteRepositoryIface
