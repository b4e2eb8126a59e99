package handler

// Actions are closed sets: anything outside them is rejected before any
// field of the request body is read.

type AuthAction string

const (
	AuthActionLogin         AuthAction = "login"
	AuthActionRegister      AuthAction = "register"
	AuthActionUpdateProfile AuthAction = "update_profile"
)

func ParseAuthAction(s string) (AuthAction, bool) {
	switch a := AuthAction(s); a {
	case AuthActionLogin, AuthActionRegister, AuthActionUpdateProfile:
		return a, true
	}
	return "", false
}

type MessagesAction string

const (
	MessagesActionSendMessage MessagesAction = "send_message"
	MessagesActionAddContact  MessagesAction = "add_contact"
	MessagesActionCreateChat  MessagesAction = "create_chat"
	MessagesActionSetTyping   MessagesAction = "set_typing"
	MessagesActionGetMessages MessagesAction = "get_messages"
	MessagesActionGetContacts MessagesAction = "get_contacts"
	MessagesActionGetChats    MessagesAction = "get_chats"
	MessagesActionIsTyping    MessagesAction = "is_typing"
)

// ParseMessagesPostAction accepts only the mutating actions.
func ParseMessagesPostAction(s string) (MessagesAction, bool) {
	switch a := MessagesAction(s); a {
	case MessagesActionSendMessage, MessagesActionAddContact,
		MessagesActionCreateChat, MessagesActionSetTyping:
		return a, true
	}
	return "", false
}

// ParseMessagesGetAction accepts only the read actions.
func ParseMessagesGetAction(s string) (MessagesAction, bool) {
	switch a := MessagesAction(s); a {
	case MessagesActionGetMessages, MessagesActionGetContacts,
		MessagesActionGetChats, MessagesActionIsTyping:
		return a, true
	}
	return "", false
}
