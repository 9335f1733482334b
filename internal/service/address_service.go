package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-backend/internal/errors"
	"ecommerce-backend/internal/model"
)

// clearDefaults unsets IsDefault on every address except the one at keep.
// Pass keep = -1 to clear all. Keeping at most one default address is an
// explicit step here, not a persistence hook.
func clearDefaults(addresses []model.Address, keep int) {
	for i := range addresses {
		if i != keep {
			addresses[i].IsDefault = false
		}
	}
}

// AddAddress appends a delivery address to the user's address book.
func (s *UserService) AddAddress(ctx context.Context, userID primitive.ObjectID, address model.Address) (*model.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	address.ID = primitive.NewObjectID()
	user.Addresses = append(user.Addresses, address)
	if address.IsDefault {
		clearDefaults(user.Addresses, len(user.Addresses)-1)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	return user, nil
}

// UpdateAddress replaces the fields of an existing address.
func (s *UserService) UpdateAddress(ctx context.Context, userID, addressID primitive.ObjectID, address model.Address) (*model.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range user.Addresses {
		if user.Addresses[i].ID == addressID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errors.New(errors.ErrAddressNotFound, "user:address.notFound")
	}

	address.ID = addressID
	user.Addresses[idx] = address
	if address.IsDefault {
		clearDefaults(user.Addresses, idx)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	return user, nil
}

// RemoveAddress deletes an address from the user's address book.
func (s *UserService) RemoveAddress(ctx context.Context, userID, addressID primitive.ObjectID) (*model.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := user.Addresses[:0]
	found := false
	for _, addr := range user.Addresses {
		if addr.ID == addressID {
			found = true
			continue
		}
		kept = append(kept, addr)
	}
	if !found {
		return nil, errors.New(errors.ErrAddressNotFound, "user:address.notFound")
	}
	user.Addresses = kept

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	return user, nil
}

// SetDefaultAddress marks one address as default and clears the previous
// one.
func (s *UserService) SetDefaultAddress(ctx context.Context, userID, addressID primitive.ObjectID) (*model.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range user.Addresses {
		if user.Addresses[i].ID == addressID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errors.New(errors.ErrAddressNotFound, "user:address.notFound")
	}

	clearDefaults(user.Addresses, idx)
	user.Addresses[idx].IsDefault = true

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	return user, nil
}

// AddToWishlist records a product on the user's wishlist, ignoring
// duplicates.
func (s *UserService) AddToWishlist(ctx context.Context, userID, productID primitive.ObjectID) (*model.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, id := range user.Wishlist {
		if id == productID {
			return user, nil
		}
	}
	user.Wishlist = append(user.Wishlist, productID)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	return user, nil
}

// RemoveFromWishlist removes a product from the user's wishlist.
func (s *UserService) RemoveFromWishlist(ctx context.Context, userID, productID primitive.ObjectID) (*model.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := user.Wishlist[:0]
	for _, id := range user.Wishlist {
		if id != productID {
			kept = append(kept, id)
		}
	}
	user.Wishlist = kept

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "common:internalError", err)
	}
	return user, nil
}
