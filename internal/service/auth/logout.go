package auth

import "context"

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	// Удаление сессии закрывает возможность обновления access токена
	return s.authRepo.DeleteSession(ctx, sessionID)
}
