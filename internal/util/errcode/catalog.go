package errcode

// App service codes.
const (
	AppList001   = "app_manager_app_list_001"
	AppCreate101 = "app_manager_app_create_101"
	AppCreate102 = "app_manager_app_create_102"
	AppCreate103 = "app_manager_app_create_103"
	AppCreate104 = "app_manager_app_create_104"
	AppCreate105 = "app_manager_app_create_105"
	AppCreate106 = "app_manager_app_create_106"
	AppCreate107 = "app_manager_app_create_107"
	AppCreate108 = "app_manager_app_create_108"
	AppCreate109 = "app_manager_app_create_109"
	AppCreate110 = "app_manager_app_create_110"
	AppCreate111 = "app_manager_app_create_111"
	AppCreate201 = "app_manager_app_create_201"
	AppRead001   = "app_manager_app_read_001"
	AppRead201   = "app_manager_app_read_201"
	AppUpdate001 = "app_manager_app_update_001"
	AppUpdate101 = "app_manager_app_update_101"
	AppUpdate102 = "app_manager_app_update_102"
	AppUpdate103 = "app_manager_app_update_103"
	AppUpdate104 = "app_manager_app_update_104"
	AppUpdate105 = "app_manager_app_update_105"
	AppUpdate106 = "app_manager_app_update_106"
	AppUpdate107 = "app_manager_app_update_107"
	AppUpdate108 = "app_manager_app_update_108"
	AppUpdate109 = "app_manager_app_update_109"
	AppUpdate110 = "app_manager_app_update_110"
	AppUpdate111 = "app_manager_app_update_111"
	AppUpdate201 = "app_manager_app_update_201"
	AppDelete001 = "app_manager_app_delete_001"
	AppDelete201 = "app_manager_app_delete_201"
)

// Member Link service codes.
const (
	MemberLinkCreate001 = "app_manager_member_link_create_001"
	MemberLinkCreate101 = "app_manager_member_link_create_101"
	MemberLinkCreate102 = "app_manager_member_link_create_102"
	MemberLinkCreate103 = "app_manager_member_link_create_103"
	MemberLinkCreate201 = "app_manager_member_link_create_201"
	MemberLinkCreate202 = "app_manager_member_link_create_202"
	MemberLinkCreate203 = "app_manager_member_link_create_203"
	MemberLinkDelete001 = "app_manager_member_link_delete_001"
	MemberLinkDelete201 = "app_manager_member_link_delete_201"
	MemberLinkDelete202 = "app_manager_member_link_delete_202"
)

// Menu Item service codes.
const (
	MenuItemList001   = "app_manager_menu_item_list_001"
	MenuItemCreate001 = "app_manager_menu_item_create_001"
	MenuItemCreate101 = "app_manager_menu_item_create_101"
	MenuItemCreate102 = "app_manager_menu_item_create_102"
	MenuItemCreate103 = "app_manager_menu_item_create_103"
	MenuItemCreate104 = "app_manager_menu_item_create_104"
	MenuItemCreate105 = "app_manager_menu_item_create_105"
	MenuItemCreate106 = "app_manager_menu_item_create_106"
	MenuItemCreate107 = "app_manager_menu_item_create_107"
	MenuItemCreate108 = "app_manager_menu_item_create_108"
	MenuItemCreate109 = "app_manager_menu_item_create_109"
	MenuItemCreate110 = "app_manager_menu_item_create_110"
	MenuItemCreate111 = "app_manager_menu_item_create_111"
	MenuItemCreate201 = "app_manager_menu_item_create_201"
	MenuItemRead001   = "app_manager_menu_item_read_001"
	MenuItemRead201   = "app_manager_menu_item_read_201"
	MenuItemRead202   = "app_manager_menu_item_read_202"
	MenuItemUpdate001 = "app_manager_menu_item_update_001"
	MenuItemUpdate101 = "app_manager_menu_item_update_101"
	MenuItemUpdate102 = "app_manager_menu_item_update_102"
	MenuItemUpdate103 = "app_manager_menu_item_update_103"
	MenuItemUpdate104 = "app_manager_menu_item_update_104"
	MenuItemUpdate105 = "app_manager_menu_item_update_105"
	MenuItemUpdate106 = "app_manager_menu_item_update_106"
	MenuItemUpdate107 = "app_manager_menu_item_update_107"
	MenuItemUpdate108 = "app_manager_menu_item_update_108"
	MenuItemUpdate109 = "app_manager_menu_item_update_109"
	MenuItemUpdate110 = "app_manager_menu_item_update_110"
	MenuItemUpdate111 = "app_manager_menu_item_update_111"
	MenuItemUpdate201 = "app_manager_menu_item_update_201"
	MenuItemDelete001 = "app_manager_menu_item_delete_001"
	MenuItemDelete201 = "app_manager_menu_item_delete_201"
)

// Menu Item User Link service codes.
const (
	UserLinkList001   = "app_manager_menu_item_user_link_list_001"
	UserLinkList201   = "app_manager_menu_item_user_link_list_201"
	UserLinkList202   = "app_manager_menu_item_user_link_list_202"
	UserLinkUpdate101 = "app_manager_menu_item_user_link_update_101"
	UserLinkUpdate102 = "app_manager_menu_item_user_link_update_102"
	UserLinkUpdate103 = "app_manager_menu_item_user_link_update_103"
	UserLinkUpdate201 = "app_manager_menu_item_user_link_update_201"
	UserLinkUpdate202 = "app_manager_menu_item_user_link_update_202"
	UserLinkUpdate203 = "app_manager_menu_item_user_link_update_203"
)

var messages = map[string]string{
	AppList001:   "One or more of the sent search fields contains invalid values. Please check the sent parameters and ensure they match the required patterns.",
	AppCreate101: `The "action" parameter is invalid. "action" cannot be longer than 8000 characters.`,
	AppCreate102: `The "icon_url" parameter is invalid. "icon_url" is required and must be a string.`,
	AppCreate103: `The "icon_url" parameter is invalid. "icon_url" cannot be longer than 8000 characters.`,
	AppCreate104: `The "name" parameter is invalid. "name" is required and must be a string.`,
	AppCreate105: `The "name" parameter is invalid. "name" cannot be longer than 50 characters.`,
	AppCreate106: `The "name" parameter is invalid. An App already exists with this name.`,
	AppCreate107: `The "online" parameter is invalid. "online" must be a boolean.`,
	AppCreate108: `The "in_app_store" parameter is invalid. "in_app_store" must be a boolean.`,
	AppCreate109: `The "private" parameter is invalid. "private" must be a boolean.`,
	AppCreate110: `The "maintenance" parameter is invalid. "maintenance" must be a boolean.`,
	AppCreate111: `The "extra" parameter is invalid. "extra" must be a dictionary.`,
	AppCreate201: "You do not have permission to make this request. Only the owners of this cloud can create Apps.",
	AppRead001:   `The "pk" path parameter is invalid. "pk" must belong to a valid App record.`,
	AppRead201:   "You do not have permission to make this request. Your Member must have a Member Link set up for this App.",
	AppUpdate001: `The "pk" path parameter is invalid. "pk" must belong to a valid App record.`,
	AppUpdate101: `The "action" parameter is invalid. "action" cannot be longer than 8000 characters.`,
	AppUpdate102: `The "icon_url" parameter is invalid. "icon_url" is required and must be a string.`,
	AppUpdate103: `The "icon_url" parameter is invalid. "icon_url" cannot be longer than 8000 characters.`,
	AppUpdate104: `The "name" parameter is invalid. "name" is required and must be a string.`,
	AppUpdate105: `The "name" parameter is invalid. "name" cannot be longer than 50 characters.`,
	AppUpdate106: `The "name" parameter is invalid. An App already exists with this name.`,
	AppUpdate107: `The "online" parameter is invalid. "online" must be a boolean.`,
	AppUpdate108: `The "in_app_store" parameter is invalid. "in_app_store" must be a boolean.`,
	AppUpdate109: `The "private" parameter is invalid. "private" must be a boolean.`,
	AppUpdate110: `The "maintenance" parameter is invalid. "maintenance" must be a boolean.`,
	AppUpdate111: `The "extra" parameter is invalid. "extra" must be a dictionary.`,
	AppUpdate201: "You do not have permission to make this request. Only the owners of this cloud can update Apps.",
	AppDelete001: `The "pk" path parameter is invalid. "pk" must belong to a valid App record.`,
	AppDelete201: "You do not have permission to make this request. Only the owners of this cloud can delete Apps.",

	MemberLinkCreate001: `The "app_id" path parameter is invalid. "app_id" must belong to a valid App record.`,
	MemberLinkCreate101: `The "member_id" parameter is invalid. "member_id" is required and must be an integer.`,
	MemberLinkCreate102: `The "member_id" parameter is invalid. You cannot create Member Links to an App for other Members.`,
	MemberLinkCreate103: `The "member_id" parameter is invalid. You must be linked to the Member that you are setting up a Member Link for.`,
	MemberLinkCreate201: "You do not have permission to make this request. You must be an administrator to create a Member Link.",
	MemberLinkCreate202: "You do not have permission to make this request. This App is private.",
	MemberLinkCreate203: "You do not have permission to make this request. A Link already exists between the given App and Member.",
	MemberLinkDelete001: `The "app_id" path parameter is invalid. There is no Link between your Member and the App specified by "app_id".`,
	MemberLinkDelete201: "You do not have permission to make this request. You must be an administrator to delete a Member Link.",
	MemberLinkDelete202: "You do not have permission to make this request. This App is private.",

	MenuItemList001:   "One or more of the sent search fields contains invalid values. Please check the sent parameters and ensure they match the required patterns.",
	MenuItemCreate001: `The "app_id" path parameter is invalid. "app_id" must belong to a valid App record.`,
	MenuItemCreate101: `The "administrator_only" parameter is invalid. "administrator_only" must be a boolean`,
	MenuItemCreate102: `The "predecessor_id" parameter is invalid. "predecessor_id" must be an integer.`,
	MenuItemCreate103: `The "predecessor_id" parameter is invalid. "predecessor_id" must belong to a Menu Item.`,
	MenuItemCreate104: `The "sequence" is invalid. "sequence" is required and must be an integer.`,
	MenuItemCreate105: `The "sequence" parameter is invalid. This "sequence" number is already in use by another Menu Item with the given "predecessor_id".`,
	MenuItemCreate106: `The "public" parameter is invalid. "public" must be a boolean.`,
	MenuItemCreate107: `The "action" parameter is invalid. "action" cannot be longer than 150 characters.`,
	MenuItemCreate108: `The "name" parameter is invalid. "name" is required and must be string.`,
	MenuItemCreate109: `The "name" parameter is invalid. "name" cannot be longer than 150 characters.`,
	MenuItemCreate110: `The "name" parameter is invalid. This "name" is already in use by another Menu Item with the given "predecessor_id".`,
	MenuItemCreate111: `The "self_managed" parameter is invalid. "self_managed" must be a boolean.`,
	MenuItemCreate201: "You do not have permission to make this request. Only the owners of this cloud can create Menu Items.",
	MenuItemRead001:   `The "app_id" and/or "pk" path parameters are invalid. "app_id" must belong to a valid App record, and "pk" must belong to a valid Menu Item in that App.`,
	MenuItemRead201:   "You do not have permission to make this request. You're Member must have a Link set up for this Menu Item App.",
	MenuItemRead202:   "You do not have permission to make this request. You must have a User Link set up for this Menu Item.",
	MenuItemUpdate001: `The "app_id" and/or "pk" path parameters are invalid. "app_id" must belong to a valid App record, and "pk" must belong to a valid Menu Item in that App.`,
	MenuItemUpdate101: `The "administrator_only" parameter is invalid. "administrator_only" must be a boolean`,
	MenuItemUpdate102: `The "predecessor_id" parameter is invalid. "predecessor_id" must be an integer.`,
	MenuItemUpdate103: `The "predecessor_id" parameter is invalid. "predecessor_id" must belong to a Menu Item.`,
	MenuItemUpdate104: `The "sequence" is invalid. "sequence" is required and must be an integer.`,
	MenuItemUpdate105: `The "sequence" parameter is invalid. This "sequence" number is already in use by another Menu Item with the given "predecessor_id".`,
	MenuItemUpdate106: `The "public" parameter is invalid. "public" must be a boolean.`,
	MenuItemUpdate107: `The "action" parameter is invalid. "action" cannot be longer than 150 characters.`,
	MenuItemUpdate108: `The "name" parameter is invalid. "name" is required and must be string.`,
	MenuItemUpdate109: `The "name" parameter is invalid. "name" cannot be longer than 150 characters.`,
	MenuItemUpdate110: `The "name" parameter is invalid. This "name" is already in use by another Menu Item with the given "predecessor_id".`,
	MenuItemUpdate111: `The "self_managed" parameter is invalid. "self_managed" must be a boolean.`,
	MenuItemUpdate201: "You do not have permission to make this request. Only the owners of this cloud can update Menu Items.",
	MenuItemDelete001: `The "app_id" and/or "pk" path parameters are invalid. "app_id" must belong to a valid App record, and "pk" must belong to a valid Menu Item in that App.`,
	MenuItemDelete201: "You do not have permission to make this request. Only the owners of this cloud can delete Menu Items.",

	UserLinkList001:   "One or more of the sent search fields contains invalid values. Please check the sent parameters and ensure they match the required patterns.",
	UserLinkList201:   `You do not have permission to make this request. There is no User in Membership with the given "user_id".`,
	UserLinkList202:   "You do not have permission to make this request. You can only read the User Links of a User in a your Member.",
	UserLinkUpdate101: `The "menu_item_ids" parameter is invalid. "menu_item_ids" is required and must be a list of integers.`,
	UserLinkUpdate102: `The "menu_item_ids" parameter is invalid. Not every item in "menu_item_ids" was an integer.`,
	UserLinkUpdate103: `The "menu_item_ids" parameter is invalid. Not all of the given ids belong to valid Menu Items, or they belong to Apps that your Member is not using.`,
	UserLinkUpdate201: "You do not have permission to make this request. You must be an admin to update Menu Item User Links.",
	UserLinkUpdate202: "You do not have permission to make this request. You must be in a self-managed Member to update Menu Item User Links.",
	UserLinkUpdate203: `You do not have permission to make this request. You cannot read the User record for the given "user_id" if it exists`,
}
