package f12022

// Driver identifies an AI driver from the game's appendix. Network human
// players carry DriverHuman.
type Driver uint8

const (
	DriverCarlosSainz Driver = iota
	DriverDaniilKvyat
	DriverDanielRicciardo
	DriverFernandoAlonso
	DriverFelipeMassa
	_
	DriverKimiRaikkonen
	DriverLewisHamilton
	_
	DriverMaxVerstappen
	DriverNicoHulkenburg
	DriverKevinMagnussen
	DriverRomainGrosjean
	DriverSebastianVettel
	DriverSergioPerez
	DriverValtteriBottas
	_
	DriverEstebanOcon
	_
	DriverLanceStroll
	DriverArronBarnes
	DriverMartinGiles
	DriverAlexMurray
	DriverLucasRoth
	DriverIgorCorreia
	DriverSophieLevasseur
	DriverJonasSchiffer
	DriverAlainForest
	DriverJayLetourneau
	DriverEstoSaari
	DriverYasarAtiyeh
	DriverCallistoCalabresi
	DriverNaotaIzumi
	DriverHowardClarke
	DriverWilheimKaufmann
	DriverMarieLaursen
	DriverFlavioNieves
	DriverPeterBelousov
	DriverKlimekMichalski
	DriverSantiagoMoreno
	DriverBenjaminCoppens
	DriverNoahVisser
	DriverGertWaldmuller
	DriverJulianQuesada
	DriverDanielJones
	DriverArtemMarkelov
	DriverTadasukeMakino
	DriverSeanGelael
	DriverNyckDeVries
	DriverJackAitken
	DriverGeorgeRussell
	DriverMaximilianGunther
	DriverNireiFukuzumi
	DriverLucaGhiotto
	DriverLandoNorris
	DriverSergioSetteCamara
	DriverLouisDeletraz
	DriverAntonioFuoco
	DriverCharlesLeclerc
	DriverPierreGasly
	_
	_
	DriverAlexanderAlbon
	DriverNicholasLatifi
	DriverDorianBoccolacci
	DriverNikoKari
	DriverRobertoMerhi
	DriverArjunMaini
	DriverAlessioLorandi
	DriverRubenMeijer
	DriverRashidNair
	DriverJackTremblay
	DriverDevonButler
	DriverLukasWeber
	DriverAntonioGiovinazzi
	DriverRobertKubica
	DriverAlainProst
	DriverAyrtonSenna
	DriverNobuharuMatsushita
	DriverNikitaMazepin
	DriverGuanyuZhou
	DriverMickSchumacher
	DriverCallumIlott
	DriverJuanManuelCorrea
	DriverJordanKing
	DriverMahaveerRaghunathan
	DriverTatianaCalderon
	DriverAnthoineHubert
	DriverGuilianoAlesi
	DriverRalphBoschung
	DriverMichaelSchumacher
	DriverDanTicktum
	DriverMarcusArmstrong
	DriverChristianLundgaard
	DriverYukiTsunoda
	DriverJehanDaruvala
	DriverGulhermeSamaia
	DriverPedroPiquet
	DriverFelipeDrugovich
	DriverRobertSchwartzman
	DriverRoyNissany
	DriverMarinoSato
	DriverAidanJackson
	DriverCasperAkkerman
)

const (
	DriverJensonButton      Driver = 109
	DriverDavidCoulthard    Driver = 110
	DriverNicoRosberg       Driver = 111
	DriverOscarPiastri      Driver = 112
	DriverLiamLawson        Driver = 113
	DriverJuriVips          Driver = 114
	DriverTheoPourchaire    Driver = 115
	DriverRichardVerschoor  Driver = 116
	DriverLirimZendeli      Driver = 117
	DriverDavidBeckmann     Driver = 118
	DriverAlessioDeledda    Driver = 121
	DriverBentViscaal       Driver = 122
	DriverEnzoFittipaldi    Driver = 123
	DriverMarkWebber        Driver = 125
	DriverJacquesVilleneuve Driver = 126
	DriverJakeHughes        Driver = 127
	DriverFrederikVesti     Driver = 128
	DriverOlliCaldwell      Driver = 129
	DriverLoganSargeant     Driver = 130
	DriverCemBolukbasi      Driver = 131
	DriverAyumaIwasa        Driver = 132
	DriverClementNovolak    Driver = 133
	DriverDennisHauger      Driver = 134
	DriverCalanWilliams     Driver = 135
	DriverJackDoohan        Driver = 136
	DriverAmauryCordeel     Driver = 137
	DriverMikaHakkinen      Driver = 138

	DriverHuman Driver = 255
)

// Team identifies a constructor, classic car or safety car from the game's
// appendix.
type Team uint8

const (
	TeamMercedes Team = iota
	TeamFerrari
	TeamRedBullRacing
	TeamWilliams
	TeamAstonMartin
	TeamAlpine
	TeamAlphaTauri
	TeamHaas
	TeamMcLaren
	TeamAlfaRomeo
)

const (
	TeamMercedes2020 Team = iota + 85
	TeamFerrari2020
	TeamRedBull2020
	TeamWilliams2020
	TeamRacingPoint2020
	TeamRenault2020
	TeamAlphaTauri2020
	TeamHaas2020
	TeamMcLaren2020
	TeamAlfaRomeo2020
	TeamAstonMartinDB11V12
	TeamAstonMartinVantageF1Edition
	TeamAstonMartinVantageSafetyCar
	TeamFerrariF8Tributo
	TeamFerrariRoma
	TeamMcLaren720S
	TeamMcLarenArtura
	TeamMercedesAMGGTBlackSeriesSafetyCar
	TeamMercedesAMGGTRPro
	TeamF1CustomTeam
	TeamPrema2021
	TeamUniVirtuosi2021
	TeamCarlin2021
	TeamHitech2021
	TeamArtGP2021
	TeamMPMotorsport2021
	TeamCharouz2021
	TeamDams2021
	TeamCampos2021
	TeamBWT2021
	TeamTrident2021
	TeamMercedesAMGGTBlackSeries
	TeamPrema2022
	TeamVirtuosi2022
	TeamCarlin2022
	TeamHitech2022
	TeamArtGP2022
	TeamMPMotorsport2022
	TeamCharouz2022
	TeamDams2022
	TeamCampos2022
	TeamVanAmersfoortRacing2022
	TeamTrident2022
)

// TeamUnknown is reported when no team is selected, e.g. in a lobby.
const TeamUnknown Team = 255

// Nationality of a driver, from the game's appendix.
type Nationality uint8

const (
	NationalityUnknown Nationality = iota
	NationalityAmerican
	NationalityArgentinean
	NationalityAustralian
	NationalityAustrian
	NationalityAzerbaijani
	NationalityBahraini
	NationalityBelgian
	NationalityBolivian
	NationalityBrazilian
	NationalityBritish
	NationalityBulgarian
	NationalityCameroonian
	NationalityCanadian
	NationalityChilean
	NationalityChinese
	NationalityColombian
	NationalityCostaRican
	NationalityCroatian
	NationalityCypriot
	NationalityCzech
	NationalityDanish
	NationalityDutch
	NationalityEcuadorian
	NationalityEnglish
	NationalityEmirian
	NationalityEstonian
	NationalityFinnish
	NationalityFrench
	NationalityGerman
	NationalityGhanaian
	NationalityGreek
	NationalityGuatemalan
	NationalityHonduran
	NationalityHongKonger
	NationalityHungarian
	NationalityIcelander
	NationalityIndian
	NationalityIndonesian
	NationalityIrish
	NationalityIsraeli
	NationalityItalian
	NationalityJamaican
	NationalityJapanese
	NationalityJordanian
	NationalityKuwaiti
	NationalityLatvian
	NationalityLebanese
	NationalityLithuanian
	NationalityLuxembourger
	NationalityMalaysian
	NationalityMaltese
	NationalityMexican
	NationalityMonegasque
	NationalityNewZealander
	NationalityNicaraguan
	NationalityNorthernIrish
	NationalityNorwegian
	NationalityOmani
	NationalityPakistani
	NationalityPanamanian
	NationalityParaguayan
	NationalityPeruvian
	NationalityPolish
	NationalityPortuguese
	NationalityQatari
	NationalityRomanian
	NationalityRussian
	NationalitySalvadoran
	NationalitySaudi
	NationalityScottish
	NationalitySerbian
	NationalitySingaporean
	NationalitySlovakian
	NationalitySlovenian
	NationalitySouthKorean
	NationalitySouthAfrican
	NationalitySpanish
	NationalitySwedish
	NationalitySwiss
	NationalityThai
	NationalityTurkish
	NationalityUruguayan
	NationalityUkrainian
	NationalityVenezuelan
	NationalityBarbadian
	NationalityWelsh
	NationalityVietnamese
)
