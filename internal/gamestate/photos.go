package gamestate

import "github.com/pastlens/photoguessr/internal/photoguessr"

// PhotoState is the deck slice: the ordered five-photo sequence plus a
// denormalized copy of the photo at the game's current index. The copy is
// kept in sync by the coordinator, never computed on read.
type PhotoState struct {
	Photos       []photoguessr.Photo `json:"photos"`
	CurrentPhoto *photoguessr.Photo  `json:"currentPhoto,omitempty"`
	Loading      bool                `json:"loading"`
	Error        string              `json:"error,omitempty"`
}

func initialPhotoState() PhotoState {
	return PhotoState{}
}

func reducePhotos(s PhotoState, a Action) PhotoState {
	switch a := a.(type) {
	case LoadPhotos, LoadPhotosWithOptions, LoadCuratedPhotos:
		s.Loading = true
		s.Error = ""
		return s

	case LoadPhotosSuccess:
		s.Photos = a.Photos
		s.Loading = false
		s.Error = ""
		// Convenience default; the authoritative sync for gameplay is the
		// explicit SetCurrentPhoto driven by the coordinator.
		if len(a.Photos) > 0 {
			p := a.Photos[0]
			s.CurrentPhoto = &p
		} else {
			s.CurrentPhoto = nil
		}
		return s

	case LoadPhotosFailure:
		s.Loading = false
		s.Error = a.Error
		return s

	case SetCurrentPhoto:
		if a.PhotoIndex < 0 || a.PhotoIndex >= len(s.Photos) {
			// Index and deck have desynchronized. Nil the copy and record
			// the fault; the coordinator escalates this to a game error.
			s.CurrentPhoto = nil
			s.Error = "photo index out of range"
			return s
		}
		p := s.Photos[a.PhotoIndex]
		s.CurrentPhoto = &p
		s.Error = ""
		return s

	case ClearCurrentPhoto:
		s.CurrentPhoto = nil
		return s

	case ClearPhotos:
		return initialPhotoState()
	}
	return s
}
